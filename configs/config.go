package configs

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds optional defaults read from cliptools.yaml. Flags always
// win; the file only replaces the built-in defaults.
type Config struct {
	InputDir     string `yaml:"input_dir"`
	Output       string `yaml:"output"`
	Privacy      string `yaml:"privacy"`
	ChunkSizeMiB int    `yaml:"chunk_size_mib"`
}

// ConfigPath returns the defaults file location. CLIPTOOLS_CONFIG takes
// priority; the fallback is cliptools.yaml in the working directory.
func ConfigPath() string {
	if path := os.Getenv("CLIPTOOLS_CONFIG"); path != "" {
		return path
	}
	return "cliptools.yaml"
}

// Load reads the optional defaults file. A missing file is not an error;
// built-in defaults fill any field the file leaves empty.
func Load() (Config, error) {
	cfg := Config{
		InputDir: DefaultInputDir,
		Output:   DefaultOutput,
		Privacy:  "private",
	}

	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config file")
	}

	if file.InputDir != "" {
		cfg.InputDir = file.InputDir
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.Privacy != "" {
		cfg.Privacy = file.Privacy
	}
	if file.ChunkSizeMiB > 0 {
		cfg.ChunkSizeMiB = file.ChunkSizeMiB
	}

	return cfg, nil
}
