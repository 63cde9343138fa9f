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

type UnlinkCommand struct {
	*base.Command

	flagConfig   string
	flagDocument string
}

func (c *UnlinkCommand) Synopsis() string {
	return "Remove attachment references from a document"
}

func (c *UnlinkCommand) Help() string {
	return `Usage: attachid refs unlink -document=<uuid> [options] <serialized>...

  Removes the reference from the document to each attachment ID.` +
		c.Flags().Help()
}

func (c *UnlinkCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("unlink", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to attachid config file.")
	f.StringVar(&c.flagDocument, "document", "", "(Required) UUID of the referencing document.")

	return f
}

func (c *UnlinkCommand) Run(args []string) int {
	ui := c.UI

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
	if flags.NArg() == 0 {
		ui.Error(attachmentid.ErrMissingInput.Error())
		return 1
	}

	_, db, err := openDB(c.Command, c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	defer func() { _ = database.Close(db) }()

	var result *multierror.Error
	for _, arg := range flags.Args() {
		id, err := attachmentid.Parse(arg)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		if err := models.DeleteAttachmentRef(db, docUUID, id); err != nil {
			if models.IsNotFound(err) {
				err = fmt.Errorf("document %s does not reference %s", docUUID, id)
			}
			result = multierror.Append(result, err)
			continue
		}
		ui.Output(fmt.Sprintf("unlinked %s", id))
	}

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
