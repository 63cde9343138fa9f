package ids

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
)

type ParseCommand struct {
	*base.Command

	flagJSON bool
}

type parsedID struct {
	Input     string `json:"input"`
	Domain    string `json:"domain"`
	ID        string `json:"id"`
	Canonical string `json:"canonical"`
	Legacy    bool   `json:"legacy"`
	Hash      string `json:"hash"`
}

func (c *ParseCommand) Synopsis() string {
	return "Decode serialized attachment IDs"
}

func (c *ParseCommand) Help() string {
	return `Usage: attachid parse [options] <serialized>...

  Decodes each argument as an attachment ID ("<domain>/<id>" or a legacy
  "<id>") and prints its components. Inputs that fail to decode are
  reported and skipped.` +
		c.Flags().Help()
}

func (c *ParseCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("parse", flag.ContinueOnError))

	f.BoolVar(&c.flagJSON, "json", false, "Print one JSON object per input.")

	return f
}

func (c *ParseCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		ui.Error(attachmentid.ErrMissingInput.Error())
		return 1
	}

	failed := 0
	for _, in := range inputs {
		id, err := attachmentid.Parse(in)
		if err != nil {
			ui.Error(err.Error())
			failed++
			continue
		}

		p := parsedID{
			Input:     in,
			Domain:    id.Domain(),
			ID:        id.LocalID(),
			Canonical: id.String(),
			Legacy:    id.IsLegacy(),
			Hash:      fmt.Sprintf("%016x", id.Hash()),
		}

		if c.flagJSON {
			out, err := json.Marshal(p)
			if err != nil {
				ui.Error(fmt.Sprintf("error encoding JSON: %v", err))
				return 1
			}
			ui.Output(string(out))
			continue
		}
		ui.Output(fmt.Sprintf("%s\tdomain=%q id=%q legacy=%t hash=%s",
			p.Canonical, p.Domain, p.ID, p.Legacy, p.Hash))
	}

	if failed > 0 {
		return 1
	}
	return 0
}
