package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/vet-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/vet-scheduler/internal/usecase/appointment"
	ucVet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/vet"
)

// ======================================================
// HANDLER
// ======================================================

type VetHandler struct {
	create *ucVet.CreateVet
	get    *ucVet.GetVet
	update *ucVet.UpdateVet
	delete *ucVet.DeleteVet
	agenda *ucAppointment.ListVetAgenda
}

func NewVetHandler(
	create *ucVet.CreateVet,
	get *ucVet.GetVet,
	update *ucVet.UpdateVet,
	delete *ucVet.DeleteVet,
	agenda *ucAppointment.ListVetAgenda,
) *VetHandler {
	return &VetHandler{
		create: create,
		get:    get,
		update: update,
		delete: delete,
		agenda: agenda,
	}
}

type VetRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r VetRequest) input() ucVet.Input {
	return ucVet.Input{
		Name:      r.Name,
		Specialty: r.Specialty,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *VetHandler) Create(c *gin.Context) {
	var req VetRequest
	if !bindJSON(c, &req) {
		return
	}

	vet, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(201, gin.H{"id": vet.ID})
}

func (h *VetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vet, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, vet)
}

func (h *VetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VetRequest
	if !bindJSON(c, &req) {
		return
	}

	vet, err := h.update.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, vet)
}

func (h *VetHandler) Delete(c *gin.Context) {
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

// ======================================================
// AGENDA (?date= ou ?year=&month=)
// ======================================================

func (h *VetHandler) Agenda(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timezone.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		list, err := h.agenda.ByDate(c.Request.Context(), id, date)
		if err != nil {
			httperr.FromError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"date":         date.Format("2006-01-02"),
			"appointments": list,
		})
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_date_or_month", "Informe a data ou o ano e o mês.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	list, err := h.agenda.ByMonth(c.Request.Context(), id, year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}
