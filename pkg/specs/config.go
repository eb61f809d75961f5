/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	v "github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	SIMPLEUT_CONFIGNAME = "simple-ut"
	SIMPLEUT_ENV_PREFIX = "SIMPLEUT"
	SIMPLEUT_VERSION    = `0.1.0`
)

type SimpleUtConfig struct {
	Viper *v.Viper `yaml:"-" json:"-"`

	General SimpleUtGeneral `mapstructure:"general" json:"general,omitempty" yaml:"general,omitempty"`
	Logging SimpleUtLogging `mapstructure:"logging" json:"logging,omitempty" yaml:"logging,omitempty"`
	Runner  SimpleUtRunner  `mapstructure:"runner" json:"runner,omitempty" yaml:"runner,omitempty"`
}

type SimpleUtGeneral struct {
	Debug bool `mapstructure:"debug,omitempty" json:"debug,omitempty" yaml:"debug,omitempty"`
}

type SimpleUtLogging struct {
	// Path of the logfile
	Path string `mapstructure:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	// Enable/Disable logging to file
	EnableLogFile bool `mapstructure:"enable_logfile,omitempty" json:"enable_logfile,omitempty" yaml:"enable_logfile,omitempty"`
	// Enable JSON format logging in file
	JsonFormat bool `mapstructure:"json_format,omitempty" json:"json_format,omitempty" yaml:"json_format,omitempty"`

	// Log level
	Level string `mapstructure:"level,omitempty" json:"level,omitempty" yaml:"level,omitempty"`

	// Enable emoji
	EnableEmoji bool `mapstructure:"enable_emoji,omitempty" json:"enable_emoji,omitempty" yaml:"enable_emoji,omitempty"`
	// Enable/Disable color in logging
	Color bool `mapstructure:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
}

type SimpleUtRunner struct {
	// File where the report is written. Empty means stdout.
	Output string `mapstructure:"output,omitempty" json:"output,omitempty" yaml:"output,omitempty"`
}

func NewSimpleUtConfig(viper *v.Viper) *SimpleUtConfig {
	if viper == nil {
		viper = v.New()
	}

	GenDefault(viper)
	return &SimpleUtConfig{Viper: viper}
}

func (c *SimpleUtConfig) GetGeneral() *SimpleUtGeneral {
	return &c.General
}

func (c *SimpleUtConfig) GetLogging() *SimpleUtLogging {
	return &c.Logging
}

func (c *SimpleUtConfig) GetRunner() *SimpleUtRunner {
	return &c.Runner
}

func (c *SimpleUtConfig) Unmarshal() error {
	err := c.Viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return err
		}
		// else: Config file not found; ignore error
	}

	return c.Viper.Unmarshal(&c)
}

func (c *SimpleUtConfig) Yaml() ([]byte, error) {
	return yaml.Marshal(c)
}

func GenDefault(viper *v.Viper) {
	viper.SetDefault("general.debug", false)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.enable_logfile", false)
	viper.SetDefault("logging.path", "/var/log/macaroni/simple-ut.log")
	viper.SetDefault("logging.json_format", false)
	viper.SetDefault("logging.enable_emoji", true)
	viper.SetDefault("logging.color", true)

	viper.SetDefault("runner.output", "")
}

func (g *SimpleUtGeneral) HasDebug() bool {
	return g.Debug
}

func (r *SimpleUtRunner) HasOutputFile() bool {
	return r.Output != ""
}
