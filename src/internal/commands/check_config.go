package commands

import (
	"flag"
	"io"
	"os"

	"github.com/shopworks/storefront-admin/src/internal/auth"
	"github.com/shopworks/storefront-admin/src/internal/config"
	"github.com/shopworks/storefront-admin/src/internal/log"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	return &CheckConfigCommand{
		fs:  flag.NewFlagSet("check-config", flag.ExitOnError),
		out: os.Stdout,
	}
}

// CheckConfigCommand validates the configuration and prints the effective values.
type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	out io.Writer
}

func (g *CheckConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckConfigCommand) Run() error {
	if _, err := auth.NewIPAllowlist(g.cfg.Admin.AllowedIPs); err != nil {
		log.Errorf("Invalid admin allowlist: %v", err)
		return err
	}

	log.Infof("---------------- Configuration START -----------------")

	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		log.Errorf("Failed to serialize config: %v", err)
		return err
	}
	if _, err := g.out.Write(buf.Bytes()); err != nil {
		log.Errorf("Failed to output config: %v", err)
		return err
	}

	log.Infof("----------------- Configuration END ------------------")
	log.Infof("Data directory: %s", g.cfg.GetAbsDataDir())
	log.Infof("Configuration is valid")

	return nil
}
