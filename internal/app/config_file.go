package app

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file YAML configuration schema. Nested sections
// map naturally onto flags.
type FileConfig struct {
	Readme string `yaml:"readme"`
	Output string `yaml:"output"`
	PDF    string `yaml:"pdf"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Execute bool `yaml:"execute"`
	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig fills empty Config fields from the file. Explicit flags
// always win; the file only provides defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if strings.TrimSpace(cfg.ReadmePath) == "" {
		cfg.ReadmePath = strings.TrimSpace(fc.Readme)
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		cfg.OutputPath = strings.TrimSpace(fc.Output)
	}
	if strings.TrimSpace(cfg.OutputPDF) == "" {
		cfg.OutputPDF = strings.TrimSpace(fc.PDF)
	}
	if strings.TrimSpace(cfg.LLMBaseURL) == "" {
		cfg.LLMBaseURL = strings.TrimSpace(fc.LLM.BaseURL)
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		cfg.LLMModel = strings.TrimSpace(fc.LLM.Model)
	}
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		cfg.LLMAPIKey = strings.TrimSpace(fc.LLM.APIKey)
	}
	if fc.Execute {
		cfg.Execute = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
