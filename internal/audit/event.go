package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Filter dos logs; datas em "from"/"to" são inclusivas por dia.
type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Store persiste e consulta a trilha de auditoria.
type Store interface {
	Log(ctx context.Context, ev Event) error
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

func toModel(ev Event) models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}
}
