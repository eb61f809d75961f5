/*
	Copyright © 2024-2025 Macaroni OS Linux
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmd

import (
	"fmt"

	"github.com/macaroni-os/simple-ut/pkg/logger"
	specs "github.com/macaroni-os/simple-ut/pkg/specs"

	"github.com/spf13/cobra"
)

func configCmdCommand(config *specs.SimpleUtConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "config",
		Aliases: []string{"c"},
		Short:   "Show the configuration.",
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			data, err := config.Yaml()
			if err != nil {
				log.Fatal(err.Error())
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		},
	}

	return cmd
}
