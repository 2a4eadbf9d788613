package main

import (
	"context"
	"log"
	"os"

	entrypoint "github.com/louisbranch/i18npatch/internal/platform/cmd"
	"github.com/louisbranch/i18npatch/internal/platform/config"
	"github.com/louisbranch/i18npatch/internal/tools/i18npatch"
)

func main() {
	cfg, err := i18npatch.LoadConfig()
	if err != nil {
		config.Exitf("load config: %v", err)
	}

	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ToolI18nPatch, func(ctx context.Context) error {
		return i18npatch.Run(ctx, cfg, os.Stdout, log.Default())
	})
	if err != nil {
		config.Exitf("patch locale files: %v", err)
	}
}
