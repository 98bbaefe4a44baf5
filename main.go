package main

import (
	"fmt"
	"os"

	"github.com/brickops/dbnb/internal/cmd"
	"github.com/brickops/dbnb/internal/log"
	"github.com/brickops/dbnb/internal/version"
)

func root() int {
	defer log.Flush()

	root := cmd.Root()
	root.Version = fmt.Sprintf("dbnb %s", version.Full())
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(root())
}
