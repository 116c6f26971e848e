package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "worklog.yaml"

// fileConfig mirrors the optional worklog.yaml config file. Every field is
// optional; environment variables win over file values.
type fileConfig struct {
	Port           string `yaml:"port"`
	DBPath         string `yaml:"db_path"`
	AttachmentsDir string `yaml:"attachments_dir"`
	CORSOrigins    string `yaml:"cors_origins"`
}

// loadFile reads the YAML config file at path. A missing or unreadable file
// yields zero values; a broken one is ignored the same way so a stray
// worklog.yaml never blocks startup.
func loadFile(path string) fileConfig {
	var fc fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}
	}

	return fc
}
