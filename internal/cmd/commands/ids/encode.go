package ids

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
)

type EncodeCommand struct {
	*base.Command

	flagConfig string
	flagDomain string
	flagLegacy bool
}

func (c *EncodeCommand) Synopsis() string {
	return "Build the canonical form of an attachment ID"
}

func (c *EncodeCommand) Help() string {
	return `Usage: attachid encode [options] <id>

  Builds an attachment ID from a domain and a local id and prints its
  canonical serialized form. The domain defaults to default_domain from the
  config file; with no domain the legacy "<id>" form is printed.` +
		c.Flags().Help()
}

func (c *EncodeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("encode", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to attachid config file.")
	f.StringVar(&c.flagDomain, "domain", "", "Domain that issued the attachment.")
	f.BoolVar(&c.flagLegacy, "legacy", false, "Ignore any default domain and build a legacy ID.")

	return f
}

func (c *EncodeCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if flags.NArg() != 1 {
		ui.Error("expected exactly one local id argument")
		return 1
	}
	if c.flagLegacy && c.flagDomain != "" {
		ui.Error("-legacy and -domain are mutually exclusive")
		return 1
	}

	domain := c.flagDomain
	if domain == "" && !c.flagLegacy {
		cfg, err := c.LoadConfig(c.flagConfig)
		if err != nil {
			ui.Error(fmt.Sprintf("error loading config: %v", err))
			return 1
		}
		domain = cfg.DefaultDomain
	}

	id, err := attachmentid.New(domain, flags.Arg(0))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	c.Log.Debug("encoded attachment ID", "domain", id.Domain(), "id", id.LocalID())
	ui.Output(id.String())
	return 0
}
