package fdkit

import (
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Per-iteration cap on the bulk-transfer length used by Copy
	CopyChunkSize int `env:"FDKIT_COPY_CHUNK,default:262144"`

	// Verify every copy by comparing source and destination checksums
	VerifyCopies bool `env:"FDKIT_VERIFY_COPIES,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	defaultsOnce sync.Once
	defaultOpts  CopyOptions
)

// copyDefaults resolves the process-wide copy defaults once, falling back
// to the built-in values if the environment cannot be loaded.
func copyDefaults() CopyOptions {
	defaultsOnce.Do(func() {
		defaultOpts = CopyOptions{ChunkSize: 262144}
		if cfg, err := GetConfig(); err == nil {
			if cfg.CopyChunkSize > 0 {
				defaultOpts.ChunkSize = cfg.CopyChunkSize
			}
			defaultOpts.Verify = cfg.VerifyCopies
		}
	})
	return defaultOpts
}
