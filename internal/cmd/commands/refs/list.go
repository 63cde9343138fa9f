package refs

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
	"github.com/hashicorp-forge/attachid/pkg/database"
	"github.com/hashicorp-forge/attachid/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagConfig   string
	flagDocument string
	flagDomain   string
	flagLegacy   bool
	flagJSON     bool
}

func (c *ListCommand) Synopsis() string {
	return "List attachment references"
}

func (c *ListCommand) Help() string {
	return `Usage: attachid refs list [options]

  Lists attachment references in attachment ID order, optionally narrowed to
  one document and/or one domain.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to attachid config file.")
	f.StringVar(&c.flagDocument, "document", "", "Only list references from this document UUID.")
	f.StringVar(&c.flagDomain, "domain", "", "Only list attachments issued by this domain.")
	f.BoolVar(&c.flagLegacy, "legacy", false, "Only list legacy (domain-less) attachments.")
	f.BoolVar(&c.flagJSON, "json", false, "Print one JSON object per reference.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagLegacy && c.flagDomain != "" {
		ui.Error("-legacy and -domain are mutually exclusive")
		return 1
	}

	var filter models.AttachmentRefFilter
	if c.flagDocument != "" {
		docUUID, err := parseDocument(c.flagDocument)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		filter.DocumentUUID = docUUID
	}
	switch {
	case c.flagLegacy:
		legacy := ""
		filter.Domain = &legacy
	case c.flagDomain != "":
		if err := attachmentid.IsDomain.Validate(c.flagDomain); err != nil {
			ui.Error(fmt.Sprintf("invalid domain %q: %v", c.flagDomain, err))
			return 1
		}
		filter.Domain = &c.flagDomain
	}

	_, db, err := openDB(c.Command, c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	defer func() { _ = database.Close(db) }()

	refs, err := models.ListAttachmentRefs(db, filter)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing references: %v", err))
		return 1
	}

	for _, r := range refs {
		if c.flagJSON {
			out, err := json.Marshal(struct {
				Document   uuid.UUID       `json:"document"`
				Attachment attachmentid.ID `json:"attachment"`
			}{r.DocumentUUID, r.AttachmentID})
			if err != nil {
				ui.Error(fmt.Sprintf("error encoding JSON: %v", err))
				return 1
			}
			ui.Output(string(out))
			continue
		}
		ui.Output(fmt.Sprintf("%s\t%s", r.DocumentUUID, r.AttachmentID))
	}
	return 0
}
