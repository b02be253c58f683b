package appointment

import "github.com/BruksfildServices01/vet-scheduler/internal/models"

// ===============================
// Appointment Status
// ===============================

// Status é um rótulo derivado para listagens; não é persistido.
type Status string

const (
	StatusUnscheduled Status = "unscheduled"
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
)

func StatusOf(ap *models.Appointment) Status {
	switch {
	case ap.Completed:
		return StatusCompleted
	case ap.ScheduledAt == nil:
		return StatusUnscheduled
	default:
		return StatusScheduled
	}
}
