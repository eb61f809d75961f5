/*
	Copyright © 2024-2025 Macaroni OS Linux
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdrunner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/macaroni-os/simple-ut/pkg/logger"
	"github.com/macaroni-os/simple-ut/pkg/registry"
	"github.com/macaroni-os/simple-ut/pkg/runner"
	specs "github.com/macaroni-os/simple-ut/pkg/specs"

	"github.com/macaroni-os/macaronictl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunTests executes the tests of reg writing the report to output,
// or to stdout when output is empty. It returns the number of failures.
func RunTests(reg *registry.Registry, output string,
	log *logger.SimpleUtLogger) (failures int, err error) {
	var w io.Writer = os.Stdout

	if output != "" {
		dir := filepath.Dir(output)
		if !utils.Exists(dir) {
			return 0, fmt.Errorf("output directory %s doesn't exist", dir)
		}

		f, cerr := os.Create(output)
		if cerr != nil {
			return 0, errors.Wrapf(cerr, "error on create report file %s", output)
		}
		bw := bufio.NewWriter(f)
		defer func() {
			if ferr := bw.Flush(); ferr != nil && err == nil {
				err = errors.Wrapf(ferr, "error on write report file %s", output)
			}
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "error on close report file %s", output)
			}
		}()
		w = bw
	}

	// Mirror the report on the logfile when enabled.
	if log.Logger != nil {
		lw := logger.NewLogWriter(log)
		defer lw.Close()
		w = io.MultiWriter(w, lw)
	}

	r := runner.NewRunner(reg, runner.WithLogger(log))
	report, rerr := r.Run(w)

	return report.Failures, rerr
}

func RunCommand(config *specs.SimpleUtConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Run all the registered tests.",
		Long: `Executes the registered tests in registration order and prints
a result line for every test and the totals.

The command exits with status 1 when at least one test fails.`,
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = config.GetRunner().Output
			}

			reg := registry.Default()
			log.Debug(fmt.Sprintf(":rocket:Running %d tests...", reg.Len()))

			failures, err := RunTests(reg, output, log)
			if err != nil {
				log.Fatal(err.Error())
			}

			if failures > 0 {
				if output != "" {
					log.Error(fmt.Sprintf("%d tests failed. See %s.", failures, output))
				}
				log.Sync()
				os.Exit(1)
			}

			if output != "" {
				log.Info(fmt.Sprintf(":party_popper:All tests passed. Report in %s.", output))
			}
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Write the report to the file instead of stdout.")

	return cmd
}
