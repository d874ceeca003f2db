package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shopworks/storefront-admin/src/internal/catalog"
)

func CreateInfoCommand() *InfoCommand {
	return &InfoCommand{
		fs:  flag.NewFlagSet("info", flag.ExitOnError),
		out: os.Stdout,
	}
}

// InfoCommand prints collection counts and timestamps as JSON.
type InfoCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	svc *catalog.Service
	out io.Writer
}

type infoOutput struct {
	ContentPages  int     `json:"contentPages"`
	TotalProducts int     `json:"totalProducts"`
	LastActivity  *string `json:"lastActivity"`
	Content       *string `json:"content"`
	Products      *string `json:"products"`
}

func (i *InfoCommand) Name() string {
	return i.fs.Name()
}

func (i *InfoCommand) Init(args []string, ctx *AppContext) error {
	i.ctx = ctx

	if err := i.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}

	if i.svc, err = buildService(cfg); err != nil {
		return err
	}

	return nil
}

func (i *InfoCommand) Run() error {
	info, err := i.svc.Info()
	if err != nil {
		return err
	}
	ts, err := i.svc.Timestamps()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(i.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infoOutput{
		ContentPages:  info.ContentPages,
		TotalProducts: info.TotalProducts,
		LastActivity:  info.LastActivity,
		Content:       ts.Content,
		Products:      ts.Products,
	}); err != nil {
		return fmt.Errorf("failed to write info: %w", err)
	}
	return nil
}
