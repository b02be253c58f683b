package audit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type Memory struct {
	mu     sync.RWMutex
	logs   []models.AuditLog
	lastID uint
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) Log(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := toModel(ev)
	m.lastID++
	log.ID = m.lastID
	log.CreatedAt = m.now()
	m.logs = append(m.logs, log)
	return nil
}

func (m *Memory) List(_ context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	m.mu.RLock()
	matched := make([]models.AuditLog, 0)
	for _, l := range m.logs {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(f.To.AddDate(0, 0, 1)) {
			continue
		}
		matched = append(matched, l)
	}
	m.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := f.Offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

var _ Store = (*Memory)(nil)
