package main

import (
	"github.com/alecthomas/kong"

	"go.ntppool.org/common/logger"

	rootcmd "go.aira.dev/staffing/cmd"
	"go.aira.dev/staffing/config"
	"go.aira.dev/staffing/selector"
	"go.aira.dev/staffing/server"
	"go.aira.dev/staffing/version"
)

func init() {
	logger.ConfigPrefix = "AIRA"
}

type CLI struct {
	Config string `name:"config" short:"c" type:"path" help:"Configuration file (default aira.yaml or $AIRA_CONFIG)"`

	Propose  selector.ProposeCmd  `cmd:"" help:"Propose a team for a program"`
	Simulate selector.SimulateCmd `cmd:"" help:"Run many proposals and report how often each RA is picked"`
	Server   server.ServerCmd     `cmd:"" help:"Run the API server"`
	Token    server.TokenCmd      `cmd:"" help:"Sign a bearer token for the API"`
	Version  version.Cmd          `cmd:"" help:"Print version information"`
}

// AfterApply makes the configuration available to commands that ask for
// it. It is only loaded when the selected command takes a *config.Config.
func (cli *CLI) AfterApply(kctx *kong.Context) error {
	return kctx.BindToProvider(func() (*config.Config, error) {
		return config.Load(cli.Config)
	})
}

func main() {
	rootcmd.Run(&CLI{}, "aira", "Staffing selector for RA programs")
}
