package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/internal/log"
)

var (
	fileName string
	verbose  bool
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "dbnb",
		Short:         "Parse, edit, and sync Databricks notebooks in SOURCE format.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.Set(true)
			}
		},
	}

	pflags := cmd.PersistentFlags()

	pflags.StringVar(&fileName, "filename", "-", "Notebook file to read. Use \"-\" for stdin.")
	pflags.BoolVar(&verbose, "verbose", false, "Enable debug logging.")

	cmd.AddCommand(parseCmd())
	cmd.AddCommand(countCmd())
	cmd.AddCommand(getCellCmd())
	cmd.AddCommand(updateCellCmd())
	cmd.AddCommand(insertCellCmd())
	cmd.AddCommand(deleteCellCmd())
	cmd.AddCommand(toJSONCmd())
	cmd.AddCommand(fromJSONCmd())
	cmd.AddCommand(lsCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(statCmd())
	cmd.AddCommand(rmCmd())
	cmd.AddCommand(mkdirCmd())
	cmd.AddCommand(catalogCmd())
	cmd.AddCommand(configCmd())

	return &cmd
}
