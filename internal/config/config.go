package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultOutput      = "Pledges_Output.xlsx"
	DefaultSheet       = "Extracted"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for one batch run.
type Config struct {
	// Inputs are explicit PDF paths from the command line. When empty, the
	// run scans InputDirectory for *.pdf instead.
	Inputs []string

	// InputDirectory is scanned for PDFs when no explicit paths are given.
	InputDirectory string

	// OutputPath is the workbook to write.
	OutputPath string

	// Sheet is the output sheet name.
	Sheet string

	// LookupPath is an optional donor-ID lookup workbook.
	LookupPath string

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		InputDirectory: currentDir,
		OutputPath:     DefaultOutput,
		Sheet:          DefaultSheet,
		Version:        "1.0.0",
		LogLevel:       DefaultLogLevel,
		MaxFileSize:    DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
// Positional arguments are taken as explicit input PDF paths.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)
	cfg.Inputs = pflag.Args()

	// Expand paths if needed
	if cfg.InputDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDirectory); err == nil {
			cfg.InputDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PLEDGES")
	viper.AutomaticEnv()

	viper.SetDefault("dir", cfg.InputDirectory)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("sheet", cfg.Sheet)
	viper.SetDefault("lookup", cfg.LookupPath)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("dir", cfg.InputDirectory, "Directory scanned for input PDFs when no paths are given")
	pflag.String("output", cfg.OutputPath, "Output workbook path")
	pflag.String("sheet", cfg.Sheet, "Output sheet name")
	pflag.String("lookup", cfg.LookupPath, "Optional donor-ID lookup workbook (fullName, ACCOUNTNUMBER)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("sheet", pflag.Lookup("sheet"))
	_ = viper.BindPFlag("lookup", pflag.Lookup("lookup"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s [flags] [pdf files...]:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExtracts donor gift records from PDF reports into an Andar import workbook\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # all PDFs in the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/pdfs              # all PDFs in a directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s report1.pdf report2.pdf          # explicit files\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --lookup=accounts.xlsx *.pdf     # with donor-ID backfill\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PLEDGES_DIR          Input directory\n")
		fmt.Fprintf(os.Stderr, "  PLEDGES_OUTPUT       Output workbook path\n")
		fmt.Fprintf(os.Stderr, "  PLEDGES_SHEET        Output sheet name\n")
		fmt.Fprintf(os.Stderr, "  PLEDGES_LOOKUP       Lookup workbook path\n")
		fmt.Fprintf(os.Stderr, "  PLEDGES_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  PLEDGES_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.InputDirectory = viper.GetString("dir")
	cfg.OutputPath = viper.GetString("output")
	cfg.Sheet = viper.GetString("sheet")
	cfg.LookupPath = viper.GetString("lookup")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 && c.InputDirectory == "" {
		return errors.New("either input paths or an input directory is required")
	}

	if c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	if c.Sheet == "" {
		return errors.New("sheet name cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// ResolveInputs returns the PDF paths for the run: the explicit paths when
// given, otherwise the sorted *.pdf files of the input directory.
func (c *Config) ResolveInputs() ([]string, error) {
	if len(c.Inputs) > 0 {
		return c.Inputs, nil
	}

	matches, err := filepath.Glob(filepath.Join(c.InputDirectory, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", c.InputDirectory, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Inputs: %d, InputDirectory: %s, OutputPath: %s, Sheet: %s, LogLevel: %s, MaxFileSize: %d}",
		len(c.Inputs), c.InputDirectory, c.OutputPath, c.Sheet, c.LogLevel, c.MaxFileSize)
}
