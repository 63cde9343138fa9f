package ids

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
)

type CompareCommand struct {
	*base.Command
}

func (c *CompareCommand) Synopsis() string {
	return "Compare two attachment IDs"
}

func (c *CompareCommand) Help() string {
	return `Usage: attachid compare <a> <b>

  Prints -1, 0 or 1 as a sorts before, equal to or after b. IDs order by
  domain first, then by local id.`
}

func (c *CompareCommand) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("compare", flag.ContinueOnError))
}

func (c *CompareCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected exactly two attachment IDs")
		return 1
	}

	a, err := attachmentid.Parse(flags.Arg(0))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	b, err := attachmentid.Parse(flags.Arg(1))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Output(strconv.Itoa(a.Compare(b)))
	return 0
}
