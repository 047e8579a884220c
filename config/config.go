// Package config provides application configuration loaded from an optional
// YAML file with environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
}

type WebConfig struct {
	Host  string `yaml:"host" json:"host"`
	Port  int    `yaml:"port" json:"port"`
	Debug bool   `yaml:"debug" json:"debug"`
}

// Listen returns the host:port address the web server binds to.
func (c WebConfig) Listen() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type SeedConfig struct {
	Enable bool `yaml:"enable" json:"enable"`
}

type AppConfig struct {
	System SystemConfig `yaml:"system" json:"system"`
	Web    WebConfig    `yaml:"web" json:"web"`
	Logger LoggerConfig `yaml:"logger" json:"logger"`
	Seed   SeedConfig   `yaml:"seed" json:"seed"`
}

// DefaultAppConfig is the baseline configuration; file values and environment
// variables override it in that order.
var DefaultAppConfig = AppConfig{
	System: SystemConfig{
		Appid:    "showjumps-crm",
		Location: "UTC",
		Workdir:  "/var/showjumps-crm",
	},
	Web: WebConfig{
		Host:  "0.0.0.0",
		Port:  1816,
		Debug: true,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/showjumps-crm/showjumps-crm.log",
	},
	Seed: SeedConfig{
		Enable: true,
	},
}

func setEnvString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func setEnvInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		*target = cast.ToInt(v)
	}
}

func setEnvBool(target *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*target = cast.ToBool(v)
	}
}

// LoadConfig reads the YAML file at path when it exists and then applies
// environment overrides. An empty path skips the file entirely.
func LoadConfig(path string) *AppConfig {
	cfg := DefaultAppConfig
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				fmt.Fprintf(os.Stderr, "config file %s parse error: %v\n", path, err)
			}
		}
	}

	setEnvString(&cfg.System.Appid, "CRM_SYSTEM_APPID")
	setEnvString(&cfg.System.Location, "CRM_SYSTEM_LOCATION")
	setEnvString(&cfg.System.Workdir, "CRM_SYSTEM_WORKDIR")
	setEnvString(&cfg.Web.Host, "CRM_WEB_HOST")
	setEnvInt(&cfg.Web.Port, "CRM_WEB_PORT")
	setEnvBool(&cfg.Web.Debug, "CRM_WEB_DEBUG")
	setEnvString(&cfg.Logger.Mode, "CRM_LOGGER_MODE")
	setEnvBool(&cfg.Logger.FileEnable, "CRM_LOGGER_FILE_ENABLE")
	setEnvString(&cfg.Logger.Filename, "CRM_LOGGER_FILENAME")
	setEnvBool(&cfg.Seed.Enable, "CRM_SEED_ENABLE")

	return &cfg
}
