package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/viant/splmodel/code"
	"github.com/viant/splmodel/coder"
	"github.com/viant/splmodel/repository"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultIndent is the indentation of written models
	DefaultIndent = "  "
	// DefaultSchemaLocation is the schema location written with toolkit models
	DefaultSchemaLocation = code.Namespace + " sourceModel.xsd"
)

type Config struct {
	Toolkit struct {
		Root           string `yaml:"root"`
		ModelFile      string `yaml:"model_file"`
		SchemaLocation string `yaml:"schema_location"`
	} `yaml:"toolkit"`
	Output struct {
		Indent string `yaml:"indent"`
		Strict bool   `yaml:"strict"` // enforce list lower bounds and unset required attributes
	} `yaml:"output"`
	Coder struct {
		WindowDefaults *bool `yaml:"window_defaults"`
	} `yaml:"coder"`
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used without a config file
func Default() *Config {
	cfg := &Config{}
	cfg.init()
	return cfg
}

func (c *Config) init() {
	if c.Toolkit.Root == "" {
		c.Toolkit.Root = "."
	}
	if c.Toolkit.ModelFile == "" {
		c.Toolkit.ModelFile = repository.ModelFileName
	}
	if c.Toolkit.SchemaLocation == "" {
		c.Toolkit.SchemaLocation = DefaultSchemaLocation
	}
	if c.Output.Indent == "" {
		c.Output.Indent = DefaultIndent
	}
	if c.Coder.WindowDefaults == nil {
		enabled := true
		c.Coder.WindowDefaults = &enabled
	}
}

// LoadConfig loads path, a missing file yields the defaults
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	var cfg Config
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(file, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("SPLMODEL_TOOLKIT_ROOT"); root != "" {
		cfg.Toolkit.Root = root
	}
	if modelFile := os.Getenv("SPLMODEL_MODEL_FILE"); modelFile != "" {
		cfg.Toolkit.ModelFile = modelFile
	}
	if indent := os.Getenv("SPLMODEL_INDENT"); indent != "" {
		cfg.Output.Indent = indent
	}
	for name, target := range map[string]*bool{
		"SPLMODEL_STRICT":  &cfg.Output.Strict,
		"SPLMODEL_VERBOSE": &cfg.Verbose,
	} {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		*target = enabled
	}
	cfg.init()
	return &cfg, nil
}

// ValidateOptions returns the validation options of the configuration
func (c *Config) ValidateOptions() []code.ValidateOption {
	if c.Output.Strict {
		return []code.ValidateOption{code.WithStrict()}
	}
	return nil
}

// RepositoryOptions returns the store options of the configuration
func (c *Config) RepositoryOptions(logger *log.Logger) []repository.Option {
	options := []repository.Option{
		repository.WithFileName(c.Toolkit.ModelFile),
		repository.WithSchemaLocation(c.Toolkit.SchemaLocation),
		repository.WithEncoderOptions(code.WithIndent(c.Output.Indent)),
	}
	if c.Verbose && logger != nil {
		options = append(options, repository.WithLogger(logger))
	}
	return options
}

// CoderOptions returns the coder options of the configuration
func (c *Config) CoderOptions(rootDirCount int) []coder.Option {
	return []coder.Option{
		coder.WithWindowDefaults(*c.Coder.WindowDefaults),
		coder.WithRootDirCount(rootDirCount),
	}
}
