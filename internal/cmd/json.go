package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/pkg/notebook"
)

func toJSONCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "to-json",
		Short: "Convert a SOURCE notebook to its JSON representation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}

			data, err := notebook.ToJSON(cells)
			if err != nil {
				return err
			}
			return writeString(cmd, string(data))
		},
	}
	return &cmd
}

func fromJSONCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "from-json",
		Short: "Convert a JSON representation back to SOURCE format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd)
			if err != nil {
				return err
			}

			cells, err := notebook.FromJSON([]byte(data))
			if err != nil {
				return err
			}
			return writeString(cmd, notebook.Serialize(cells, true))
		},
	}
	return &cmd
}
