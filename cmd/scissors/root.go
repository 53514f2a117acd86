// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scissors/internal/config"
)

// app carries state shared by subcommands: the resolved configuration and
// the global flags it came from.
type app struct {
	configPath string
	envFile    string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "scissors",
		Short:         "SCISSORS vector embeddings from molecular similarity matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env, err := config.ReadEnv(a.envFile)
			if err != nil {
				return err
			}
			a.cfg, err = config.Load(a.configPath, env)
			return err
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "KEY=VALUE file with SCISSORS_* settings")

	root.AddCommand(
		newVectorsCmd(a),
		newChooseBasisCmd(a),
		newSimilarityCmd(a),
		newSpectrumCmd(a),
		newImportCmd(),
		newExportCmd(),
	)

	return root
}
