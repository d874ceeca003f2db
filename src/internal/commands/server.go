package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shopworks/storefront-admin/src/internal/api"
	"github.com/shopworks/storefront-admin/src/internal/auth"
	"github.com/shopworks/storefront-admin/src/internal/catalog"
	"github.com/shopworks/storefront-admin/src/internal/config"
	"github.com/shopworks/storefront-admin/src/internal/log"
)

// ServerCommand implements the server command for running the HTTP API server.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	// Command-specific flags
	bindAddr string

	svc        *catalog.Service
	authorizer *auth.IPAllowlist
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "server"
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("server", flag.ExitOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server (overrides server.listen_addr)")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.bindAddr == "" {
		c.bindAddr = cfg.Server.ListenAddr
	}

	if c.svc, err = buildService(cfg); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	if c.authorizer, err = buildAuthorizer(cfg); err != nil {
		return err
	}

	return nil
}

// routerOptions maps the configuration onto API options.
func (c *ServerCommand) routerOptions() api.Options {
	opts := api.Options{
		ProtectProductListing: c.cfg.Admin.ProtectProductListing,
		UIDir:                 c.cfg.GetAbsUIDir(),
		CORS: api.CORSOptions{
			AllowedOrigins: c.cfg.CORS.AllowedOrigins,
			AllowAll:       c.cfg.CORS.AllowAll,
		},
	}
	if c.cfg.Admin.ExposeAllowlist {
		opts.ExposedAllowlist = c.authorizer.Entries()
	}
	return opts
}

// Run starts the HTTP API server and blocks until a signal or a serve error.
func (c *ServerCommand) Run() error {
	log.Infof("Starting storefront-admin API server on %s", c.bindAddr)
	log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	log.Infof("Admin access: loopback + %d allowlist entr(ies) [%s]",
		len(c.authorizer.Entries()), strings.Join(c.authorizer.Entries(), ", "))
	if c.cfg.Admin.ProtectProductListing {
		log.Infof("GET /api/products requires admin access")
	}

	server := api.NewServer(c.bindAddr, api.NewRouter(c.svc, c.authorizer, c.routerOptions()))

	serverErrors, err := server.Start()
	if err != nil {
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err, ok := <-serverErrors:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		timeout := time.Duration(c.cfg.Server.ShutdownTimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return err
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
