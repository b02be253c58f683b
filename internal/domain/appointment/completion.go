package appointment

import (
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// IsCompleted informa se a consulta já aconteceu: horário definido e
// estritamente anterior a now, ambos no fuso de referência.
func IsCompleted(scheduled *time.Time, now time.Time) bool {
	if scheduled == nil {
		return false
	}
	return timezone.In(*scheduled).Before(timezone.In(now))
}

// Schedule define o horário e recalcula completed.
// Uma marcação explícita anterior é descartada.
func Schedule(ap *models.Appointment, at time.Time, now time.Time) {
	t := timezone.In(at)
	ap.ScheduledAt = &t
	ap.Completed = IsCompleted(ap.ScheduledAt, now)
}

// MarkCompleted sobrescreve o valor derivado até o próximo Schedule.
func MarkCompleted(ap *models.Appointment, completed bool) {
	ap.Completed = completed
}
