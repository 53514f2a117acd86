// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scissors/store"
)

func newImportCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "import NAME FILE.csv",
		Short: "Store a CSV array under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			m, err := store.ReadCSV(f)
			if err != nil {
				return err
			}

			return withStore(path, func(db *store.DB) error {
				return db.Put(cmd.Context(), args[0], m)
			})
		},
	}
	cmd.Flags().StringVar(&path, "store", "", "array store")
	_ = cmd.MarkFlagRequired("store")

	return cmd
}

func newExportCmd() *cobra.Command {
	var path, out string
	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Write the array stored under NAME as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(path, func(db *store.DB) error {
				m, err := db.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if out == "" {
					return store.WriteCSV(cmd.OutOrStdout(), m)
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err = store.WriteCSV(f, m); err != nil {
					_ = f.Close()
					return err
				}

				return f.Close()
			})
		},
	}
	cmd.Flags().StringVar(&path, "store", "", "array store")
	cmd.Flags().StringVarP(&out, "output", "o", "", "CSV file (default: stdout)")
	_ = cmd.MarkFlagRequired("store")

	return cmd
}
