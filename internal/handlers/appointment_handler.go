package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/dto"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/vet-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	get      *ucAppointment.GetAppointment
	schedule *ucAppointment.ScheduleAppointment
	complete *ucAppointment.CompleteAppointment
	delete   *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	get *ucAppointment.GetAppointment,
	schedule *ucAppointment.ScheduleAppointment,
	complete *ucAppointment.CompleteAppointment,
	delete *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		get:      get,
		schedule: schedule,
		complete: complete,
		delete:   delete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	VetID uint `json:"vet_id"`
	PetID uint `json:"pet_id"`
}

type ScheduleAppointmentRequest struct {
	ScheduledTime string `json:"scheduled_time"`
}

type CompleteAppointmentRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// ======================================================
// CREATE (POST /users/:id/appointments)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID: userID,
		VetID:  req.VetID,
		PetID:  req.PetID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(201, dto.NewAppointment(ap))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, dto.NewAppointment(ap))
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *AppointmentHandler) Schedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ScheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.schedule.Execute(c.Request.Context(), id, req.ScheduledTime)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, dto.NewAppointment(ap))
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CompleteAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, *req.Completed)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, dto.NewAppointment(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	deleted(c, id)
}
