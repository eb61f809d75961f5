/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	cmdrunner "github.com/macaroni-os/simple-ut/cmd/runner"
	"github.com/macaroni-os/simple-ut/pkg/logger"
	specs "github.com/macaroni-os/simple-ut/pkg/specs"

	"github.com/macaroni-os/macaronictl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cliName = `Copyright (c) 2024-2025 Macaroni OS

Simple Unit-Test Runner

Distributed under the terms of the GNU General Public License version 3
this tool comes with ABSOLUTELY NO WARRANTY; This is free software, and you
are welcome to redistribute it under certain conditions.
`
)

var (
	BuildTime   string
	BuildCommit string
)

func initConfig(config *specs.SimpleUtConfig) {
	// Set env variable
	config.Viper.SetEnvPrefix(specs.SIMPLEUT_ENV_PREFIX)
	config.Viper.BindEnv("config")
	config.Viper.SetDefault("config", "")

	config.Viper.AutomaticEnv()

	// Create EnvKey Replacer for handle complex structure
	replacer := strings.NewReplacer(".", "__", "-", "_")
	config.Viper.SetEnvKeyReplacer(replacer)

	// Set config file name (without extension)
	config.Viper.SetConfigName(specs.SIMPLEUT_CONFIGNAME)

	config.Viper.SetTypeByDefaultValue(true)
}

func initCommand(rootCmd *cobra.Command, config *specs.SimpleUtConfig) {
	var pflags = rootCmd.PersistentFlags()

	pflags.StringP("config", "c", "", "simple-ut configuration file")
	pflags.BoolP("debug", "d", config.Viper.GetBool("general.debug"),
		"Enable debug output.")

	config.Viper.BindPFlag("config", pflags.Lookup("config"))
	config.Viper.BindPFlag("general.debug", pflags.Lookup("debug"))

	rootCmd.AddCommand(
		cmdrunner.RunCommand(config),
		cmdrunner.ListCommand(config),
		configCmdCommand(config),
	)
}

func loadConfig(config *specs.SimpleUtConfig) error {
	var v *viper.Viper = config.Viper

	v.SetConfigType("yml")
	if v.GetString("config") == "" {
		v.AddConfigPath(".")
	} else {
		if !utils.Exists(v.GetString("config")) {
			return fmt.Errorf("config file %s not found", v.GetString("config"))
		}
		v.SetConfigFile(v.GetString("config"))
	}

	err := config.Unmarshal()
	if err != nil {
		return errors.Wrap(err, "error on parse configuration")
	}

	return nil
}

func Execute() {
	// Create Main Instance Config object
	var config *specs.SimpleUtConfig = specs.NewSimpleUtConfig(nil)

	initConfig(config)

	var rootCmd = &cobra.Command{
		Use:          "simple-ut",
		Short:        cliName,
		Version:      fmt.Sprintf("%s-g%s %s", specs.SIMPLEUT_VERSION, BuildCommit, BuildTime),
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				cmd.Help()
				os.Exit(0)
			}
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			err := loadConfig(config)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			// Initialize logger
			log := logger.NewSimpleUtLogger(config)
			if config.GetLogging().EnableLogFile && config.GetLogging().Path != "" {
				if err := log.InitLogger2File(); err != nil {
					os.Exit(1)
				}
			}
			log.SetAsDefault()
		},
	}

	initCommand(rootCmd, config)

	// Start command execution
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

}
