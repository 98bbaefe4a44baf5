package cmd

import (
	"context"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/internal/client"
)

var importLanguages = []string{"PYTHON", "SQL", "SCALA", "R"}

func lsCmd() *cobra.Command {
	var asJSON bool

	cmd := cobra.Command{
		Use:   "ls <path>",
		Short: "List the contents of a workspace directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			objects, err := c.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, objects)
			}

			table := newTable(cmd)
			table.AddField(strings.ToUpper("Path"))
			table.AddField(strings.ToUpper("Type"))
			table.AddField(strings.ToUpper("Language"))
			table.AddField(strings.ToUpper("ID"))
			table.EndRow()

			for _, obj := range objects {
				table.AddField(obj.Path)
				table.AddField(obj.ObjectType)
				table.AddField(obj.Language)
				table.AddField(strconv.FormatInt(obj.ObjectID, 10))
				table.EndRow()
			}
			return errors.Wrap(table.Render(), "failed to render table")
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON.")

	return &cmd
}

func exportCmd() *cobra.Command {
	var format string

	cmd := cobra.Command{
		Use:   "export <path>",
		Short: "Export a notebook's content.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToUpper(format)
			switch format {
			case client.FormatSource, client.FormatJupyter, client.FormatHTML, client.FormatDBC, client.FormatRMarkdown:
			default:
				return errors.Errorf("invalid format %q; use SOURCE, JUPYTER, HTML, DBC or R_MARKDOWN", format)
			}

			c, err := newAPIClient()
			if err != nil {
				return err
			}

			content, err := c.Export(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}
			return writeString(cmd, content)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "F", client.FormatSource, "Export format.")

	return &cmd
}

func importCmd() *cobra.Command {
	var (
		contentFile string
		language    string
		noOverwrite bool
		noVerify    bool
	)

	cmd := cobra.Command{
		Use:   "import <path>",
		Short: "Import or replace a notebook from a file or stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			language = strings.ToUpper(language)
			if !slices.Contains(importLanguages, language) {
				return errors.Errorf("invalid language %q; use %s", language, strings.Join(importLanguages, ", "))
			}

			var content string
			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return errors.Wrapf(err, "failed to read content file %q", contentFile)
				}
				content = string(data)
			} else {
				var err error
				content, err = readSource(cmd)
				if err != nil {
					return err
				}
			}

			c, err := newAPIClient()
			if err != nil {
				return err
			}

			path := args[0]
			err = c.Import(cmd.Context(), client.ImportRequest{
				Path:      path,
				Content:   content,
				Language:  language,
				Overwrite: !noOverwrite,
			})
			if err != nil {
				return err
			}

			status := map[string]interface{}{
				"status":   "success",
				"path":     path,
				"language": language,
			}
			if !noVerify {
				if err := verifyImport(cmd.Context(), c, path, content); err != nil {
					status["status"] = "warning"
					status["verified"] = false
					status["verification_error"] = err.Error()
				} else {
					status["verified"] = true
				}
			}
			return writeJSON(cmd, status)
		},
	}

	cmd.Flags().StringVarP(&contentFile, "content-file", "f", "", "File containing the notebook content. Omit to read from stdin.")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Notebook language (required).")
	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Fail if the notebook already exists.")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip verification after import.")
	_ = cmd.MarkFlagRequired("language")

	return &cmd
}

// verifyImport re-exports the notebook and compares it, modulo line
// endings and surrounding whitespace, with what was sent.
func verifyImport(ctx context.Context, c *client.Client, path, expected string) error {
	actual, err := c.Export(ctx, path, client.FormatSource)
	if err != nil {
		return errors.Wrap(err, "verification export failed")
	}

	normalize := func(s string) string {
		return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	}
	expected = normalize(expected)
	actual = normalize(actual)
	if expected == actual {
		return nil
	}

	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")
	for i := 0; i < len(expLines) && i < len(actLines); i++ {
		if expLines[i] != actLines[i] {
			return errors.Errorf("line %d differs: expected %q, got %q", i+1, truncateLine(expLines[i]), truncateLine(actLines[i]))
		}
	}
	return errors.Errorf("line count differs: expected %d, got %d", len(expLines), len(actLines))
}

func truncateLine(s string) string {
	if len(s) > 80 {
		return s[:80]
	}
	return s
}

func statCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "stat <path>",
		Short: "Get metadata about a notebook or directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			info, err := c.GetStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, info)
		},
	}
	return &cmd
}

func rmCmd() *cobra.Command {
	var recursive bool

	cmd := cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a notebook or directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := c.Delete(cmd.Context(), args[0], recursive); err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{"status": "deleted", "path": args[0]})
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recursively delete directory contents.")

	return &cmd
}

func mkdirCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a workspace directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := c.Mkdirs(cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{"status": "created", "path": args[0], "type": "DIRECTORY"})
		},
	}
	return &cmd
}
