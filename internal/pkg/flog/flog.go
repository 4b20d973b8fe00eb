// Package flog provides context helpers that tie a zerolog logger and a run id
// to a single command invocation.
package flog

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const FieldRunID = "run"

type idKey struct{}

// IDFromCtx returns the run id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// WithRun returns a context carrying a run id and a copy of the global logger
// with the id as a field. An id already present in ctx is reused.
func WithRun(ctx context.Context) (context.Context, xid.ID) {
	id, ok := IDFromCtx(ctx)
	if !ok {
		id = xid.New()
		ctx = CtxWithID(ctx, id)
	}
	l := log.Logger.With().Str(FieldRunID, id.String()).Logger()
	return l.WithContext(ctx), id
}

// From gets the logger in the context, falling back to the global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

func TraceFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Trace()
}

func DebugFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Debug()
}

func InfoFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Info()
}

func WarnFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Warn()
}

func ErrorFrom(ctx context.Context) *zerolog.Event {
	return From(ctx).Error()
}
