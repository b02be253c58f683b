package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/httpresp"
	ucPet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/pet"
)

type PetHandler struct {
	create *ucPet.CreatePet
	get    *ucPet.GetPet
	update *ucPet.UpdatePet
	delete *ucPet.DeletePet
	list   *ucPet.ListPets
}

func NewPetHandler(
	create *ucPet.CreatePet,
	get *ucPet.GetPet,
	update *ucPet.UpdatePet,
	delete *ucPet.DeletePet,
	list *ucPet.ListPets,
) *PetHandler {
	return &PetHandler{
		create: create,
		get:    get,
		update: update,
		delete: delete,
		list:   list,
	}
}

type PetRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     *int   `json:"age"`
	OwnerID uint   `json:"owner_id"`
}

func (r PetRequest) input() ucPet.Input {
	return ucPet.Input{
		Name:    r.Name,
		Species: r.Species,
		Age:     r.Age,
		OwnerID: r.OwnerID,
	}
}

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if !bindJSON(c, &req) {
		return
	}

	pet, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(201, gin.H{"id": pet.ID})
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pet, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PetRequest
	if !bindJSON(c, &req) {
		return
	}

	pet, err := h.update.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
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

// List aceita ?species= e ?owner_id=.
func (h *PetHandler) List(c *gin.Context) {
	filter := domainPet.ListFilter{
		Species: strings.TrimSpace(c.Query("species")),
	}

	if raw := c.Query("owner_id"); raw != "" {
		ownerID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || ownerID == 0 {
			httperr.BadRequest(c, "invalid_owner_id", "Dono inválido.")
			return
		}
		id := uint(ownerID)
		filter.OwnerID = &id
	}

	pets, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, pets)
}
