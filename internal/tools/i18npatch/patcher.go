// Package i18npatch adds a fixed translation section to the client's
// English and Arabic locale files.
package i18npatch

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	apperrors "github.com/louisbranch/i18npatch/internal/platform/errors"
	"github.com/louisbranch/i18npatch/internal/platform/i18n/localefile"
)

const tracerName = "github.com/louisbranch/i18npatch/internal/tools/i18npatch"

// Outcome describes what a commit did to a section.
type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeReplaced  Outcome = "replaced"
	OutcomeUnchanged Outcome = "unchanged"
)

// Patcher applies sections to locale files. The zero value is not usable;
// construct one with New.
type Patcher struct {
	logger    *log.Logger
	tracer    trace.Tracer
	writeFile func(path string, data []byte, perm fs.FileMode) error
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithLogger sets the logger used for per-file progress lines.
func WithLogger(logger *log.Logger) Option {
	return func(p *Patcher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New returns a Patcher that logs to the standard logger and writes files
// atomically.
func New(opts ...Option) *Patcher {
	p := &Patcher{
		logger:    log.Default(),
		tracer:    otel.Tracer(tracerName),
		writeFile: writeFileAtomic,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// prepared is a target whose new contents are ready in memory.
type prepared struct {
	target   Target
	original []byte
	updated  []byte
	mode     fs.FileMode
	outcome  Outcome
}

// Patch sets sectionKey in the locale file at path to section and rewrites
// the file.
func Patch(path, sectionKey string, section localefile.Section) error {
	return New(WithLogger(log.New(io.Discard, "", 0))).Patch(context.Background(), path, sectionKey, section)
}

// Patch sets sectionKey in the locale file at path to section and rewrites
// the file.
func (p *Patcher) Patch(ctx context.Context, path, sectionKey string, section localefile.Section) error {
	return p.Apply(ctx, []Target{{Locale: language.Und, Path: path, SectionKey: sectionKey, Section: section}})
}

// Apply patches every target or none of them. All files are read, parsed and
// rendered before the first write; a failed write restores files already
// written in this call.
func (p *Patcher) Apply(ctx context.Context, targets []Target) error {
	ctx, span := p.tracer.Start(ctx, "i18npatch.apply", trace.WithAttributes(
		attribute.Int("i18npatch.targets", len(targets)),
	))
	defer span.End()

	ready := make([]prepared, 0, len(targets))
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return failSpan(span, err)
		}
		item, err := p.prepare(ctx, target)
		if err != nil {
			return failSpan(span, err)
		}
		ready = append(ready, item)
	}

	if err := p.commit(ctx, ready); err != nil {
		return failSpan(span, err)
	}
	return nil
}

func (p *Patcher) prepare(ctx context.Context, target Target) (prepared, error) {
	_, span := p.tracer.Start(ctx, "i18npatch.prepare", trace.WithAttributes(
		attribute.String("i18npatch.path", target.Path),
		attribute.String("i18npatch.locale", target.Locale.String()),
	))
	defer span.End()

	info, err := os.Stat(target.Path)
	if err != nil {
		return prepared{}, failSpan(span, fileError(apperrors.StageRead, target, err))
	}
	original, err := os.ReadFile(target.Path)
	if err != nil {
		return prepared{}, failSpan(span, fileError(apperrors.StageRead, target, err))
	}

	doc, err := localefile.Parse(original)
	if err != nil {
		return prepared{}, failSpan(span, stageError(apperrors.StageParse, target, err))
	}

	outcome := OutcomeInserted
	if doc.Has(target.SectionKey) {
		outcome = OutcomeReplaced
	}
	if err := doc.SetSection(target.SectionKey, target.Section); err != nil {
		return prepared{}, failSpan(span, stageError(apperrors.StagePatch, target, err))
	}
	updated := doc.Bytes()
	if bytes.Equal(updated, original) {
		outcome = OutcomeUnchanged
	}
	span.SetAttributes(attribute.String("i18npatch.outcome", string(outcome)))

	return prepared{
		target:   target,
		original: original,
		updated:  updated,
		mode:     info.Mode().Perm(),
		outcome:  outcome,
	}, nil
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	return err
}

func fileError(stage apperrors.Stage, target Target, cause error) error {
	return apperrors.FileError(stage, target.Path, cause).With(apperrors.MetaLocale, target.Locale.String())
}

// stageError attaches file context to an error from the document layer,
// keeping its code.
func stageError(stage apperrors.Stage, target Target, cause error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeOf(cause), string(stage)+" locale file", map[string]string{
		apperrors.MetaPath:   target.Path,
		apperrors.MetaLocale: target.Locale.String(),
		apperrors.MetaStage:  string(stage),
	}, cause)
}
