package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/pkg/notebook"
)

func getCellCmd() *cobra.Command {
	var (
		asJSON bool
		raw    bool
	)

	cmd := cobra.Command{
		Use:   "get-cell <index>",
		Short: "Get a single cell by its zero-based index.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}

			cell, err := notebook.Get(cells, index)
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				return writeJSON(cmd, cell)
			case raw:
				return writeString(cmd, cell.Content)
			default:
				return writeString(cmd, notebook.FormatCell(cell, true))
			}
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON.")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Output raw cell content only.")

	return &cmd
}

func updateCellCmd() *cobra.Command {
	var (
		content     string
		contentFile string
		language    string
	)

	cmd := cobra.Command{
		Use:   "update-cell <index>",
		Short: "Replace the content of a cell and print the updated notebook.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}

			newContent, err := readContent(content, contentFile)
			if err != nil {
				return err
			}

			updated, err := notebook.Update(cells, index, newContent, notebook.Language(language))
			if err != nil {
				return err
			}
			return writeString(cmd, notebook.Serialize(updated, true))
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "New cell content.")
	cmd.Flags().StringVarP(&contentFile, "content-file", "f", "", "File containing the new content.")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Cell language; wraps content with MAGIC markers.")

	return &cmd
}

func insertCellCmd() *cobra.Command {
	var (
		content     string
		contentFile string
		language    string
	)

	cmd := cobra.Command{
		Use:   "insert-cell <index>",
		Short: "Insert a new cell and print the updated notebook.",
		Long:  "Insert a new cell at the given position. Inserting at the index equal to the cell count appends.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}

			newContent, err := readContent(content, contentFile)
			if err != nil {
				return err
			}

			inserted, err := notebook.Insert(cells, index, newContent, notebook.Language(language))
			if err != nil {
				return err
			}
			return writeString(cmd, notebook.Serialize(inserted, true))
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Cell content.")
	cmd.Flags().StringVarP(&contentFile, "content-file", "f", "", "File containing the content.")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Cell language; wraps content with MAGIC markers.")

	return &cmd
}

func deleteCellCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "delete-cell <index>",
		Short: "Delete a cell and print the updated notebook.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			cells, err := parseNotebook(cmd)
			if err != nil {
				return err
			}

			deleted, err := notebook.Delete(cells, index)
			if err != nil {
				return err
			}
			return writeString(cmd, notebook.Serialize(deleted, true))
		},
	}
	return &cmd
}
