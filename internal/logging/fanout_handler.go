package logging

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler duplicates records to every child handler.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range f {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range f {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	children := make(fanoutHandler, len(f))
	for i, handler := range f {
		children[i] = handler.WithAttrs(attrs)
	}
	return children
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	children := make(fanoutHandler, len(f))
	for i, handler := range f {
		children[i] = handler.WithGroup(name)
	}
	return children
}
