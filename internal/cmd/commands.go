package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/internal/cmd/commands/ids"
	"github.com/hashicorp-forge/attachid/internal/cmd/commands/refs"
	"github.com/hashicorp-forge/attachid/internal/cmd/commands/version"
)

// Commands is the mapping of all available attachid commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"check": func() (cli.Command, error) {
			return &ids.CheckCommand{Command: b}, nil
		},
		"compare": func() (cli.Command, error) {
			return &ids.CompareCommand{Command: b}, nil
		},
		"encode": func() (cli.Command, error) {
			return &ids.EncodeCommand{Command: b}, nil
		},
		"parse": func() (cli.Command, error) {
			return &ids.ParseCommand{Command: b}, nil
		},
		"refs": func() (cli.Command, error) {
			return &refs.Command{Command: b}, nil
		},
		"refs link": func() (cli.Command, error) {
			return &refs.LinkCommand{Command: b}, nil
		},
		"refs list": func() (cli.Command, error) {
			return &refs.ListCommand{Command: b}, nil
		},
		"refs unlink": func() (cli.Command, error) {
			return &refs.UnlinkCommand{Command: b}, nil
		},
		"sort": func() (cli.Command, error) {
			return &ids.SortCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
