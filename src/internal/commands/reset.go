package commands

import (
	"flag"
	"fmt"

	"github.com/shopworks/storefront-admin/src/internal/catalog"
	"github.com/shopworks/storefront-admin/src/internal/log"
)

func CreateResetCommand() *ResetCommand {
	return &ResetCommand{
		fs: flag.NewFlagSet("reset", flag.ExitOnError),
	}
}

// ResetCommand empties collections without going through the HTTP API.
type ResetCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	svc *catalog.Service

	scope string
	yes   bool
}

func (r *ResetCommand) Name() string {
	return r.fs.Name()
}

func (r *ResetCommand) Init(args []string, ctx *AppContext) error {
	r.ctx = ctx

	r.fs.StringVar(&r.scope, "type", catalog.ResetAll, "Collections to reset: content, products or all")
	r.fs.BoolVar(&r.yes, "yes", false, "Confirm the reset")

	if err := r.fs.Parse(args); err != nil {
		return err
	}

	if !r.yes {
		return fmt.Errorf("refusing to reset %q without -yes", r.scope)
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}

	if r.svc, err = buildService(cfg); err != nil {
		return err
	}

	return nil
}

func (r *ResetCommand) Run() error {
	if err := r.svc.Reset(r.scope); err != nil {
		return err
	}
	log.Infof("Reset complete: %s", r.scope)
	return nil
}
