package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/corrector"
	"github.com/pboueri/supervisor/src/logger"
	"github.com/pboueri/supervisor/src/paths"
	"gopkg.in/yaml.v3"
)

// Dir is the directory, relative to the working directory, holding config.yaml.
const Dir = ".supervisor"

type Config struct {
	Version    int              `yaml:"version"`
	Project    ProjectConfig    `yaml:"project"`
	Generation GenerationConfig `yaml:"generation"`
	Corrector  CorrectorConfig  `yaml:"corrector"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ProjectConfig struct {
	Dir              string `yaml:"dir"`
	BuildGradle      string `yaml:"build_gradle"`
	Manifest         string `yaml:"manifest"`
	SettingsGradle   string `yaml:"settings_gradle"`
	GradleProperties string `yaml:"gradle_properties"`
	LogFile          string `yaml:"log_file"`
}

type GenerationConfig struct {
	Complexity string `yaml:"complexity"`
}

type CorrectorConfig struct {
	Interpreter string        `yaml:"interpreter"`
	Script      string        `yaml:"script"`
	Shell       string        `yaml:"shell"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
}

type LoggingConfig struct {
	Level string    `yaml:"level"`
	Sinks []LogSink `yaml:"sinks"`
}

type LogSink struct {
	Type      string `yaml:"type"`                 // "console" or "file"
	Filename  string `yaml:"filename,omitempty"`   // For file sink
	UseStderr bool   `yaml:"use_stderr,omitempty"` // For console sink
	Colorize  bool   `yaml:"colorize,omitempty"`   // For console sink
}

// GetDefaultConfig returns the configuration used when no file is present.
func GetDefaultConfig() *Config {
	layout := paths.DefaultLayout()
	runner := corrector.DefaultShellRunnerConfig()
	return &Config{
		Version: 1,
		Project: ProjectConfig{
			Dir:              layout.ProjectDir,
			BuildGradle:      layout.BuildGradle,
			Manifest:         layout.Manifest,
			SettingsGradle:   layout.SettingsGradle,
			GradleProperties: layout.GradleProperties,
			LogFile:          layout.LogFile,
		},
		Generation: GenerationConfig{
			Complexity: string(src.ComplexityComplex),
		},
		Corrector: CorrectorConfig{
			Interpreter: runner.Interpreter,
			Script:      runner.Script,
			Shell:       runner.Shell,
		},
		Logging: LoggingConfig{
			Level: "warn",
			Sinks: []LogSink{
				{
					Type:      "console",
					UseStderr: true,
					Colorize:  true,
				},
			},
		},
	}
}

// Path returns the config file location for a working directory.
func Path(workingDir string) string {
	return filepath.Join(workingDir, Dir, "config.yaml")
}

// LoadConfig reads the config file under workingDir, falling back to the
// defaults when it does not exist. Values in the file override defaults.
func LoadConfig(workingDir string) (*Config, error) {
	fileConfig, err := LoadConfigFromFile(Path(workingDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return GetDefaultConfig(), nil
		}
		return nil, err
	}

	config := MergeConfig(GetDefaultConfig(), fileConfig)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func SaveConfig(workingDir string, config *Config) error {
	configPath := Path(workingDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadConfigFromFile loads configuration from a specific file without defaults.
func LoadConfigFromFile(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// MergeConfig merges override config into base config. Override values take precedence.
func MergeConfig(base, override *Config) *Config {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}

	result := *base

	if override.Version != 0 {
		result.Version = override.Version
	}

	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	pick(&result.Project.Dir, override.Project.Dir)
	pick(&result.Project.BuildGradle, override.Project.BuildGradle)
	pick(&result.Project.Manifest, override.Project.Manifest)
	pick(&result.Project.SettingsGradle, override.Project.SettingsGradle)
	pick(&result.Project.GradleProperties, override.Project.GradleProperties)
	pick(&result.Project.LogFile, override.Project.LogFile)

	pick(&result.Generation.Complexity, override.Generation.Complexity)

	pick(&result.Corrector.Interpreter, override.Corrector.Interpreter)
	pick(&result.Corrector.Script, override.Corrector.Script)
	pick(&result.Corrector.Shell, override.Corrector.Shell)
	if override.Corrector.Timeout != 0 {
		result.Corrector.Timeout = override.Corrector.Timeout
	}

	pick(&result.Logging.Level, override.Logging.Level)
	if len(override.Logging.Sinks) > 0 {
		result.Logging.Sinks = override.Logging.Sinks
	}

	return &result
}

// Validate rejects values that cannot drive a run.
func (c *Config) Validate() error {
	if _, err := src.ParseComplexity(c.Generation.Complexity); err != nil {
		return fmt.Errorf("invalid generation.complexity: %w", err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	if c.Corrector.Timeout < 0 {
		return fmt.Errorf("corrector.timeout must not be negative")
	}
	if filepath.IsAbs(c.Project.Dir) {
		return fmt.Errorf("project.dir must be relative to the working directory")
	}
	return nil
}

// Complexity returns the parsed generation complexity.
func (c *Config) Complexity() src.Complexity {
	complexity, err := src.ParseComplexity(c.Generation.Complexity)
	if err != nil {
		return src.ComplexityComplex
	}
	return complexity
}

// Layout converts the project section into a path layout.
func (c *Config) Layout() paths.Layout {
	return paths.Layout{
		ProjectDir:       c.Project.Dir,
		BuildGradle:      c.Project.BuildGradle,
		Manifest:         c.Project.Manifest,
		SettingsGradle:   c.Project.SettingsGradle,
		GradleProperties: c.Project.GradleProperties,
		LogFile:          c.Project.LogFile,
	}
}

// RunnerConfig converts the corrector section into shell runner settings.
func (c *Config) RunnerConfig() corrector.ShellRunnerConfig {
	return corrector.ShellRunnerConfig{
		Interpreter: c.Corrector.Interpreter,
		Script:      c.Corrector.Script,
		Shell:       c.Corrector.Shell,
		Timeout:     c.Corrector.Timeout,
	}
}

// InitializeLogger sets up the logger based on config
func InitializeLogger(config *Config, workingDir string) error {
	level, err := logger.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	var sinks []logger.Sink
	for _, sinkConfig := range config.Logging.Sinks {
		switch sinkConfig.Type {
		case "console":
			out := os.Stdout
			if sinkConfig.UseStderr {
				out = os.Stderr
			}
			sinks = append(sinks, logger.NewConsoleSink(out, sinkConfig.Colorize))
		case "file":
			filename := sinkConfig.Filename
			if filename == "" {
				filename = "supervisor.log"
			}
			if !filepath.IsAbs(filename) {
				filename = filepath.Join(workingDir, Dir, filename)
			}
			sink, err := logger.NewFileSink(filename)
			if err != nil {
				return fmt.Errorf("failed to create file sink: %w", err)
			}
			sinks = append(sinks, sink)
		default:
			return fmt.Errorf("unknown sink type: %s", sinkConfig.Type)
		}
	}

	logger.Replace(logger.NewMultiLogger(sinks...))
	logger.SetLevel(level)

	return nil
}
