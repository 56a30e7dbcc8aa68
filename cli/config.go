package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/jrobinso/s3etag/etag"
)

// Config is the optional TOML defaults file loaded with the -config flag.
// Values apply at the point the flag is scanned; later flags override them.
//
//	part_size = "1GiB"
//	processes = 4
//	checksum = "MD5"
//	format = "tsv"
//	verbose = false
type Config struct {
	PartSize  string `toml:"part_size"`
	Processes int    `toml:"processes" validate:"omitempty,min=1"`
	Checksum  string `toml:"checksum"`
	Format    string `toml:"format" validate:"omitempty,oneof=tsv json"`
	Verbose   bool   `toml:"verbose"`
}

// LoadConfig reads and validates a defaults file.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func applyConfigFile(path string, opts *Options, partSize *ByteSize) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	if cfg.PartSize != "" {
		if err := partSize.Set(cfg.PartSize); err != nil {
			return err
		}
	}
	if cfg.Processes > 0 {
		opts.Workers = cfg.Processes
	}
	if cfg.Checksum != "" {
		algo, err := etag.ParseAlgorithm(cfg.Checksum)
		if err != nil {
			return err
		}
		opts.Algorithm = algo
	}
	if cfg.Format != "" {
		format, err := ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		opts.Format = format
	}
	if cfg.Verbose {
		opts.Verbose = true
	}

	return nil
}
