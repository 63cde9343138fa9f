package ids

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/internal/config"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
)

type CheckCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
}

func (c *CheckCommand) Synopsis() string {
	return "Validate a batch of attachment IDs"
}

func (c *CheckCommand) Help() string {
	return `Usage: attachid check [options] [<serialized>...]

  Validates attachment IDs from the arguments and/or a file (one per line).
  Every entry is checked; each invalid entry is reported with its line
  number. IDs must decode, and when configured, use an allowed domain and
  carry a domain (reject_legacy).` +
		c.Flags().Help()
}

func (c *CheckCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("check", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to attachid config file.")
	f.StringVar(&c.flagFile, "file", "", "File with one attachment ID per line.")

	return f
}

func (c *CheckCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	source := "args"
	lines := base.ArgLines(flags.Args())
	if c.flagFile != "" {
		source = c.flagFile
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

	var result *multierror.Error
	for _, l := range lines {
		if err := checkOne(l.Text, cfg); err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %q: %w", l.Number, l.Text, err))
		}
	}

	invalid := 0
	if result != nil {
		invalid = len(result.Errors)
	}
	logger.Debug("checked attachment IDs", "source", source, "total", len(lines), "invalid", invalid)

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		ui.Error(fmt.Sprintf("%d of %d attachment IDs are invalid", invalid, len(lines)))
		return 1
	}

	ui.Info(fmt.Sprintf("All %d attachment IDs are valid", len(lines)))
	return 0
}

func checkOne(s string, cfg *config.Config) error {
	id, err := attachmentid.Parse(s)
	if err != nil {
		return err
	}
	return cfg.CheckID(id)
}
