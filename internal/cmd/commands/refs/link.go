package refs

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
	"github.com/hashicorp-forge/attachid/pkg/database"
	"github.com/hashicorp-forge/attachid/pkg/models"
)

type LinkCommand struct {
	*base.Command

	flagConfig   string
	flagDocument string
	flagFile     string
}

func (c *LinkCommand) Synopsis() string {
	return "Record that a document references attachments"
}

func (c *LinkCommand) Help() string {
	return `Usage: attachid refs link -document=<uuid> [options] [<serialized>...]

  Records a reference from the document to each attachment ID given as an
  argument or listed in -file. Existing references are left as they are.
  Entries that fail to decode, or that allowed_domains or reject_legacy in
  the config rule out, are reported and the rest are still linked.` +
		c.Flags().Help()
}

func (c *LinkCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("link", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to attachid config file.")
	f.StringVar(&c.flagDocument, "document", "", "(Required) UUID of the referencing document.")
	f.StringVar(&c.flagFile, "file", "", "File with one attachment ID per line.")

	return f
}

func (c *LinkCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	docUUID, err := parseDocument(c.flagDocument)
	if err != nil {
		ui.Error(err.Error())
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

	cfg, db, err := openDB(c.Command, c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	defer func() { _ = database.Close(db) }()

	var (
		result  *multierror.Error
		created int
	)
	for _, l := range lines {
		id, err := attachmentid.Parse(l.Text)
		if err == nil {
			err = cfg.CheckID(id)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %q: %w", l.Number, l.Text, err))
			continue
		}

		ref := &models.AttachmentRef{DocumentUUID: docUUID, AttachmentID: id}
		isNew, err := ref.FirstOrCreate(db)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("error linking %s: %w", id, err))
			continue
		}
		if isNew {
			created++
			ui.Output(fmt.Sprintf("linked %s", id))
		} else {
			ui.Output(fmt.Sprintf("already linked %s", id))
		}
	}

	logger.Info("linked attachments", "document", docUUID, "created", created)

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
