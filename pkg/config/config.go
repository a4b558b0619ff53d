/*
Package config manages TOML config for the Nepali stemmer tools.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bleyesh/Nepali-Stemmer/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Stemmer StemmerConfig `toml:"stemmer"`
	Bench   BenchConfig   `toml:"bench"`
	CLI     CliConfig     `toml:"cli"`
}

// StemmerConfig has stripping engine options.
type StemmerConfig struct {
	MinRootLength int     `toml:"min_root_length"`
	MinRootRatio  float64 `toml:"min_root_ratio"`
	UseStopwords  bool    `toml:"use_stopwords"`
	SuffixFile    string  `toml:"suffix_file"`
}

// BenchConfig holds default file locations for benchmark runs.
type BenchConfig struct {
	Corpus       string `toml:"corpus"`
	GoldRoot     string `toml:"gold_root"`
	GoldSuffix   string `toml:"gold_suffix"`
	OutputRoot   string `toml:"output_root"`
	OutputSuffix string `toml:"output_suffix"`
}

// CliConfig holds interactive shell options.
type CliConfig struct {
	ShowDetail bool `toml:"show_detail"`
	NoFilter   bool `toml:"no_filter"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/nepstem
// 2. ~/Library/Application Support/nepstem (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "nepstem")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "nepstem")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/nepstem/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Stemmer: StemmerConfig{
			MinRootLength: 2,
			MinRootRatio:  0.3,
			UseStopwords:  true,
			SuffixFile:    "",
		},
		Bench: BenchConfig{
			Corpus:       "input.txt",
			GoldRoot:     "answer_root.txt",
			GoldSuffix:   "answer_suffix.txt",
			OutputRoot:   "output_root.txt",
			OutputSuffix: "output_suffix.txt",
		},
		CLI: CliConfig{
			ShowDetail: true,
			NoFilter:   false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever valid sections a broken TOML file has.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if stemmerSection, ok := utils.ExtractSection(tempConfig, "stemmer"); ok {
		extractStemmerConfig(stemmerSection, &config.Stemmer)
	}
	if benchSection, ok := utils.ExtractSection(tempConfig, "bench"); ok {
		extractBenchConfig(benchSection, &config.Bench)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractStemmerConfig extracts engine configuration from a map
func extractStemmerConfig(data map[string]any, stemmer *StemmerConfig) {
	if val, ok := utils.ExtractInt64(data, "min_root_length"); ok {
		stemmer.MinRootLength = val
	}
	if val, ok := utils.ExtractFloat64(data, "min_root_ratio"); ok {
		stemmer.MinRootRatio = val
	}
	if val, ok := utils.ExtractBool(data, "use_stopwords"); ok {
		stemmer.UseStopwords = val
	}
	if val, ok := utils.ExtractString(data, "suffix_file"); ok {
		stemmer.SuffixFile = val
	}
}

// extractBenchConfig extracts benchmark file locations from a map
func extractBenchConfig(data map[string]any, bench *BenchConfig) {
	if val, ok := utils.ExtractString(data, "corpus"); ok {
		bench.Corpus = val
	}
	if val, ok := utils.ExtractString(data, "gold_root"); ok {
		bench.GoldRoot = val
	}
	if val, ok := utils.ExtractString(data, "gold_suffix"); ok {
		bench.GoldSuffix = val
	}
	if val, ok := utils.ExtractString(data, "output_root"); ok {
		bench.OutputRoot = val
	}
	if val, ok := utils.ExtractString(data, "output_suffix"); ok {
		bench.OutputSuffix = val
	}
}

// extractCliConfig extracts interactive shell config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_detail"); ok {
		cli.ShowDetail = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
