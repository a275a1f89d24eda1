// MFP - Miulti-Function Printers and scanners toolkit
// Logging facilities
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// Context binding

package log

import "context"

type ctxKeyLogger struct{}
type ctxKeyPrefix struct{}

// NewContext returns a context with lg bound as its [Logger], so
// [Trace]/[Debug]/[Info]/... calls against it reach lg.
func NewContext(ctx context.Context, lg *Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger{}, lg)
}

// NewContextPrefix returns a context with prefix bound, prepended to
// every message logged through it.
func NewContextPrefix(ctx context.Context, prefix string) context.Context {
	return context.WithValue(ctx, ctxKeyPrefix{}, prefix)
}

// CtxLogger returns the [Logger] bound to ctx, or [DefaultLogger] if
// ctx is nil or has none bound.
func CtxLogger(ctx context.Context) *Logger {
	if ctx != nil {
		if lg, ok := ctx.Value(ctxKeyLogger{}).(*Logger); ok {
			return lg
		}
	}
	return DefaultLogger
}

// CtxPrefix returns the prefix bound to ctx, or "" if none is bound.
func CtxPrefix(ctx context.Context) string {
	if ctx != nil {
		if prefix, ok := ctx.Value(ctxKeyPrefix{}).(string); ok {
			return prefix
		}
	}
	return ""
}
