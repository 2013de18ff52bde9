package fdkit

import "testing"

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				CopyChunkSize: 262144,
				VerifyCopies:  false,
			},
		},
		{
			name: "overridden values",
			envVars: map[string]string{
				"BEAVER_FDKIT_COPY_CHUNK":    "65536",
				"BEAVER_FDKIT_VERIFY_COPIES": "true",
			},
			want: Config{
				CopyChunkSize: 65536,
				VerifyCopies:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			got, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("GetConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
