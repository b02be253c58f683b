package audit

import (
	"context"
	"log/slog"
)

// Recorder grava eventos de forma síncrona. Falhas são registradas em log
// e nunca interrompem a requisição.
type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Record(ctx context.Context, ev Event) {
	if r == nil || r.store == nil {
		return
	}

	if err := r.store.Log(ctx, ev); err != nil {
		slog.WarnContext(ctx, "audit error",
			slog.String("action", ev.Action),
			slog.String("entity", ev.Entity),
			slog.String("error", err.Error()),
		)
	}
}
