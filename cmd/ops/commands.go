package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blaisecz/zenith/internal/langfuse"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/blaisecz/zenith/internal/notify"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/blaisecz/zenith/internal/seed"
	"github.com/blaisecz/zenith/internal/service"
	"github.com/google/uuid"
)

type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *Context) error {
	db, err := ctx.DB()
	if err != nil {
		return err
	}
	if err := seed.Run(db); err != nil {
		return err
	}

	fmt.Println("Sample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
	return nil
}

type ReportCmd struct {
	User  uuid.UUID `arg:"" help:"User ID."`
	Month string    `help:"Month to summarize (YYYY-MM). Defaults to the current month in the user's timezone."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	db, err := ctx.DB()
	if err != nil {
		return err
	}

	svc := service.NewReportService(
		repository.NewReportRepository(db),
		repository.NewUserRepository(db),
		repository.NewHabitRepository(db),
		repository.NewHabitLogRepository(db),
	)
	report, err := svc.Generate(ctx, c.User, c.Month)
	if err != nil {
		return err
	}
	if report == nil {
		fmt.Println("Nothing to report.")
		return nil
	}
	return writeJSON(os.Stdout, report)
}

type ExportCmd struct {
	User   uuid.UUID `arg:"" help:"User ID."`
	Output string    `short:"o" help:"Output file. Defaults to zenith-export-<date>.json; use - for stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	db, err := ctx.DB()
	if err != nil {
		return err
	}

	svc := service.NewExportService(
		repository.NewUserRepository(db),
		repository.NewHabitRepository(db),
		repository.NewHabitLogRepository(db),
	)
	export, err := svc.Export(ctx, c.User)
	if err != nil {
		return err
	}

	if c.Output == "-" {
		return writeJSON(os.Stdout, export)
	}

	path := c.Output
	if path == "" {
		path = fmt.Sprintf("zenith-export-%s.json", export.ExportedAt.Format("2006-01-02"))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeJSON(f, export); err != nil {
		return err
	}
	logger.Info("Export written", "path", path, "protocols", len(export.Habits), "logs", len(export.Logs))
	return nil
}

type NotifyCmd struct {
	DryRun bool `help:"Log signals instead of posting them to the webhook."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	db, err := ctx.DB()
	if err != nil {
		return err
	}

	var signaler notify.Signaler = notify.LogSignaler{}
	if !c.DryRun && ctx.Config.NotifyWebhookURL != "" {
		signaler = notify.NewWebhookSignaler(ctx.Config.NotifyWebhookURL, nil)
	}

	monitor := notify.NewMonitor(repository.NewHabitRepository(db), signaler, ctx.Config.NotifyInterval)
	raised, err := monitor.Tick(ctx, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("%d signal(s) raised\n", raised)
	return nil
}

type LangfuseCheckCmd struct{}

func (c *LangfuseCheckCmd) Run(ctx *Context) error {
	cfg := langfuse.Config{
		BaseURL:     ctx.Config.LangfuseBaseURL,
		PublicKey:   ctx.Config.LangfusePublicKey,
		SecretKey:   ctx.Config.LangfuseSecretKey,
		Environment: ctx.Config.LangfuseEnv,
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.SecretKey))
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(cfg)
	if !client.IsEnabled() {
		return fmt.Errorf("langfuse client is disabled, check LANGFUSE_* variables")
	}

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "ops-check",
		Name:   "zenith-ops-check",
		Input:  map[string]any{"time": time.Now().Format(time.RFC3339)},
		Output: map[string]any{"status": "success"},
		Tags:   []string{"ops", "manual"},
	})
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	if err := client.Flush(ctx); err != nil {
		return fmt.Errorf("send trace: %w", err)
	}

	fmt.Println("Test trace created")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.BaseURL, traceID)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
