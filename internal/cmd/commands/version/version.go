package version

import (
	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the attachid version"
}

func (c *Command) Help() string {
	return `Usage: attachid version

  Prints the attachid version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("attachid " + version.Version)
	return 0
}
