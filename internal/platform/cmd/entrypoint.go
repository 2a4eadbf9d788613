package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/i18npatch/internal/platform/config"
	"github.com/louisbranch/i18npatch/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Tool identifiers for command startup telemetry and CLI naming consistency.
const (
	ToolI18nPatch = "i18n-patch"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// RunWithTelemetry configures observability and executes a tool run.
func RunWithTelemetry(ctx context.Context, tool string, run func(context.Context) error) error {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return fmt.Errorf("tool name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, tool)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultOTelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", tool, err)
		}
	}()
	return run(ctx)
}
