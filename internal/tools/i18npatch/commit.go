package i18npatch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/i18npatch/internal/platform/errors"
)

// commit writes every prepared target in order. When a write fails, targets
// already written are restored to their original bytes.
func (p *Patcher) commit(ctx context.Context, ready []prepared) error {
	_, span := p.tracer.Start(ctx, "i18npatch.commit", trace.WithAttributes(
		attribute.Int("i18npatch.targets", len(ready)),
	))
	defer span.End()

	for i, item := range ready {
		if err := p.writeFile(item.target.Path, item.updated, item.mode); err != nil {
			werr := fileError(apperrors.StageWrite, item.target, err)
			if rerr := p.rollback(ready[:i]); rerr != nil {
				return failSpan(span, multierror.Append(werr, rerr))
			}
			return failSpan(span, werr)
		}
		p.logger.Printf("%s %s (%s): %s", item.outcome, item.target.SectionKey, item.target.Locale, item.target.Path)
	}
	return nil
}

func (p *Patcher) rollback(written []prepared) error {
	var result *multierror.Error
	for i := len(written) - 1; i >= 0; i-- {
		item := written[i]
		if err := p.writeFile(item.target.Path, item.original, item.mode); err != nil {
			result = multierror.Append(result, fileError(apperrors.StageRollback, item.target, err))
			continue
		}
		p.logger.Printf("restored %s (%s): %s", item.target.SectionKey, item.target.Locale, item.target.Path)
	}
	return result.ErrorOrNil()
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, so readers never observe a partially written file. A
// symlinked path is written through to the file it points to.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	if resolved, rerr := filepath.EvalSymlinks(path); rerr == nil {
		path = resolved
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
