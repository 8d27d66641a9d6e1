// Command folio serves and exports the personal site theme.
package main

import (
	"os"

	"github.com/opencode-ai/folio/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
