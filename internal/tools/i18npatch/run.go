package i18npatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
)

// Run patches the English and Arabic locale files under cfg.Root and writes
// the confirmation line to out.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	patcher := New(WithLogger(logger))
	if err := patcher.Apply(ctx, NotificationTargets(cfg.Root)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, SuccessMessage)
	return err
}
