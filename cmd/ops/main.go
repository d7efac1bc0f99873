// Command ops runs operator tasks against the Zenith database and its
// integrations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/blaisecz/zenith/internal/config"
	"github.com/blaisecz/zenith/internal/logger"
	"gorm.io/gorm"
)

var CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error). Overrides LOG_LEVEL."`

	Seed          SeedCmd          `cmd:"" help:"Seed demo users, default protocols and sample logs."`
	Report        ReportCmd        `cmd:"" help:"Generate and store a monthly report for a user."`
	Export        ExportCmd        `cmd:"" help:"Write a user's full data export as JSON."`
	Notify        NotifyCmd        `cmd:"" help:"Run one protocol window scan."`
	LangfuseCheck LangfuseCheckCmd `cmd:"" name:"langfuse-check" help:"Send a test trace to Langfuse."`
}

// Context is shared by every command.
type Context struct {
	context.Context
	Config *config.Config

	db *gorm.DB
}

// DB connects on first use so commands that never touch storage do not need it.
func (c *Context) DB() (*gorm.DB, error) {
	if c.db != nil {
		return c.db, nil
	}
	db, err := config.NewDatabase(c.Config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.db = db
	return db, nil
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("zenith-ops"),
		kong.Description("Operator tasks for the Zenith protocol tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	cfg := config.Load()
	if CLI.LogLevel != "" {
		cfg.LogLevel = CLI.LogLevel
	}
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := kctx.Run(&Context{Context: ctx, Config: cfg}); err != nil {
		logger.Error("Command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
