package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brickops/dbnb/internal/client"
	"github.com/brickops/dbnb/internal/config"
	"github.com/brickops/dbnb/internal/log"
	"github.com/brickops/dbnb/internal/version"
	"github.com/brickops/dbnb/pkg/notebook"
)

// readSource reads the notebook text from --filename, stdin by default.
func readSource(cmd *cobra.Command) (string, error) {
	if fileName == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read from stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file %q", fileName)
	}
	return string(data), nil
}

// readContent resolves --content / --content-file for edit commands.
func readContent(content, contentFile string) (string, error) {
	if contentFile != "" {
		data, err := os.ReadFile(contentFile)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read content file %q", contentFile)
		}
		return string(data), nil
	}
	if content == "" {
		return "", notebook.ErrMissingContent
	}
	return content, nil
}

func parseIndexArg(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("invalid cell index %q", arg)
	}
	return index, nil
}

func parseNotebook(cmd *cobra.Command) ([]notebook.Cell, error) {
	source, err := readSource(cmd)
	if err != nil {
		return nil, err
	}
	return notebook.Parse(source), nil
}

func writeString(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return errors.Wrap(err, "failed to write to stdout")
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}
	return writeString(cmd, string(data))
}

func newAPIClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Complete() {
		return nil, errors.New("databricks is not configured; run \"dbnb config set-host\" and \"dbnb config set-token\"")
	}

	httpClient := client.NewHTTPClient(
		nil,
		client.WithUserAgent(version.BaseVersion()),
		client.WithTokenGetter(func() (string, error) { return cfg.Token, nil }),
		client.WithLogger(log.Get()),
	)
	return client.New(cfg.Host, httpClient)
}

func newTable(cmd *cobra.Command) tableprinter.TablePrinter {
	out := cmd.OutOrStdout()

	// Detect width. For non-TTY, use a default width of 80.
	isTTY := false
	width := 80
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		isTTY = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}
	return tableprinter.New(out, isTTY, width)
}
