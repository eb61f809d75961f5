/*
	Copyright © 2024-2025 Macaroni OS Linux
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdrunner

import (
	"fmt"

	"github.com/macaroni-os/simple-ut/pkg/registry"
	specs "github.com/macaroni-os/simple-ut/pkg/specs"

	"github.com/spf13/cobra"
)

func ListCommand(config *specs.SimpleUtConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List the registered tests.",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range registry.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	return cmd
}
