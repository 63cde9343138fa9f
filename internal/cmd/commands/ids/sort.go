package ids

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
)

type SortCommand struct {
	*base.Command

	flagFile   string
	flagUnique bool
}

func (c *SortCommand) Synopsis() string {
	return "Print attachment IDs in canonical order"
}

func (c *SortCommand) Help() string {
	return `Usage: attachid sort [options] [<serialized>...]

  Reads attachment IDs from the arguments and/or a file (one per line) and
  prints them sorted by domain, then local id. Entries that fail to decode
  are reported and left out.` +
		c.Flags().Help()
}

func (c *SortCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("sort", flag.ContinueOnError))

	f.StringVar(&c.flagFile, "file", "", "File with one attachment ID per line.")
	f.BoolVar(&c.flagUnique, "unique", false, "Drop duplicate IDs.")

	return f
}

func (c *SortCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	lines := base.ArgLines(flags.Args())
	if c.flagFile != "" {
		fileLines, err := base.ReadLines(c.FS, c.flagFile)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		lines = append(lines, fileLines...)
	}
	if len(lines) == 0 {
		ui.Error(attachmentid.ErrMissingInput.Error())
		return 1
	}

	var (
		result *multierror.Error
		parsed = make([]attachmentid.ID, 0, len(lines))
	)
	for _, l := range lines {
		id, err := attachmentid.Parse(l.Text)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %q: %w", l.Number, l.Text, err))
			continue
		}
		parsed = append(parsed, id)
	}

	if c.flagUnique {
		parsed = attachmentid.Dedupe(parsed)
	} else {
		attachmentid.Sort(parsed)
	}
	for _, id := range parsed {
		ui.Output(id.String())
	}

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
