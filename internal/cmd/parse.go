package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/pkg/notebook"
)

func parseCmd() *cobra.Command {
	var (
		asJSON  bool
		summary bool
	)

	cmd := cobra.Command{
		Use:   "parse",
		Short: "Parse a notebook and display its cells.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, cells)
			}

			for _, cell := range cells {
				if err := writeString(cmd, notebook.FormatCell(cell, !summary)+"\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON.")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Show cell summaries without content.")

	return &cmd
}

func countCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "count",
		Short: "Count the cells in a notebook.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}
			return writeString(cmd, strconv.Itoa(len(cells)))
		},
	}
	return &cmd
}
