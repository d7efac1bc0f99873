package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/zenith/internal/config"
)

func TestInitTracer_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{LangfuseBaseURL: "http://localhost:3000"}
	if Enabled(cfg) {
		t.Fatal("expected tracing disabled without keys")
	}

	shutdown, err := InitTracer(context.Background(), cfg, ServiceName)
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestEnabled(t *testing.T) {
	cfg := &config.Config{
		LangfuseBaseURL:   "http://localhost:3000",
		LangfusePublicKey: "pk",
		LangfuseSecretKey: "sk",
	}
	if !Enabled(cfg) {
		t.Error("expected tracing enabled with full Langfuse config")
	}
}
