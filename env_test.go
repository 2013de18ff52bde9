package fdkit

import (
	"errors"
	"os"
	"testing"
)

func TestEnvExists(t *testing.T) {
	t.Setenv("FDKIT_TEST_PRESENT", "value")

	if !EnvExists("FDKIT_TEST_PRESENT") {
		t.Error("EnvExists() = false for a set variable")
	}
	if EnvExists("FDKIT_TEST_DEFINITELY_ABSENT") {
		t.Error("EnvExists() = true for an unset variable")
	}

	// Empty value still counts as set.
	t.Setenv("FDKIT_TEST_EMPTY", "")
	if !EnvExists("FDKIT_TEST_EMPTY") {
		t.Error("EnvExists() = false for an empty but set variable")
	}
}

func TestReadEnv(t *testing.T) {
	t.Setenv("FDKIT_TEST_KEY", "hello")

	v, err := ReadEnv("FDKIT_TEST_KEY")
	if err != nil {
		t.Fatalf("ReadEnv() error = %v", err)
	}
	if v != "hello" {
		t.Errorf("ReadEnv() = %q, want %q", v, "hello")
	}

	_, err = ReadEnv("FDKIT_TEST_DEFINITELY_ABSENT")
	if err == nil {
		t.Fatal("ReadEnv() of unset variable succeeded")
	}
	if !errors.Is(err, ErrNotSet) {
		t.Errorf("errors.Is(err, ErrNotSet) = false, err = %v", err)
	}
}

func TestWorkingDirectory(t *testing.T) {
	got, err := WorkingDirectory()
	if err != nil {
		t.Fatalf("WorkingDirectory() error = %v", err)
	}
	want, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("WorkingDirectory() = %q, want %q", got, want)
	}
}

func TestWorkingDirectoryFromEnv(t *testing.T) {
	t.Setenv("PWD", "/somewhere/recorded/by/the/shell")

	got, err := WorkingDirectoryFromEnv()
	if err != nil {
		t.Fatalf("WorkingDirectoryFromEnv() error = %v", err)
	}
	if got != "/somewhere/recorded/by/the/shell" {
		t.Errorf("WorkingDirectoryFromEnv() = %q", got)
	}

	// t.Setenv registered the restore; unset to exercise the failure path.
	t.Setenv("PWD", "")
	os.Unsetenv("PWD")

	if _, err := WorkingDirectoryFromEnv(); !errors.Is(err, ErrNotSet) {
		t.Errorf("WorkingDirectoryFromEnv() with unset PWD: err = %v, want ErrNotSet", err)
	}
}
