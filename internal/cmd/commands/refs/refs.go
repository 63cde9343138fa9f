package refs

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/cli"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/attachid/internal/cmd/base"
	"github.com/hashicorp-forge/attachid/internal/config"
	"github.com/hashicorp-forge/attachid/pkg/database"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage document attachment references"
}

func (c *Command) Help() string {
	return `Usage: attachid refs <subcommand> [options] [args]

  This command groups subcommands that record which attachment IDs a
  document references. Only identifiers are stored.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// openDB loads the config at path and connects to its database.
func openDB(c *base.Command, configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := c.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseConfig(), c.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}
	return cfg, db, nil
}

func parseDocument(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, fmt.Errorf("document flag is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid document UUID %q: %w", s, err)
	}
	return u, nil
}
