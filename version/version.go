// Package version is the version subcommand.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.ntppool.org/common/version"
)

// Cmd prints the build version. The version itself is set at build
// time through go.ntppool.org/common/version.
type Cmd struct {
	JSON bool `help:"Print the build information as JSON"`
}

func (cmd *Cmd) Run(ctx context.Context) error {
	if cmd.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(version.VersionInfo())
	}
	fmt.Printf("aira %s\n", version.Version())
	return nil
}
