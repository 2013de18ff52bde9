package fdkit

import (
	"os"

	"golang.org/x/sys/unix"
)

// EnvExists reports whether the environment variable key is set. A missing
// variable is false, never an error.
func EnvExists(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// ReadEnv returns the value of the environment variable key, or an error
// wrapping ErrNotSet when it is unset.
func ReadEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", &OpError{Op: "getenv", Path: key, Err: ErrNotSet}
	}
	return v, nil
}

// WorkingDirectory returns the process's current working directory as the
// OS reports it.
func WorkingDirectory() (string, error) {
	wd, err := unix.Getwd()
	if err != nil {
		return "", &OpError{Op: "getwd", Err: err}
	}
	return wd, nil
}

// WorkingDirectoryFromEnv returns the conventional PWD variable. Unlike
// WorkingDirectory it reflects whatever the spawning shell recorded, which
// can be stale or absent even when the process has a valid working
// directory; prefer WorkingDirectory unless that shell view is wanted.
func WorkingDirectoryFromEnv() (string, error) {
	return ReadEnv("PWD")
}
