package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/httpresp"
	ucPet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/pet"
	ucUser "github.com/BruksfildServices01/vet-scheduler/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	create   *ucUser.CreateUser
	get      *ucUser.GetUser
	update   *ucUser.UpdateUser
	delete   *ucUser.DeleteUser
	list     *ucUser.ListUsers
	listPets *ucPet.ListPets
}

func NewUserHandler(
	create *ucUser.CreateUser,
	get *ucUser.GetUser,
	update *ucUser.UpdateUser,
	delete *ucUser.DeleteUser,
	list *ucUser.ListUsers,
	listPets *ucPet.ListPets,
) *UserHandler {
	return &UserHandler{
		create:   create,
		get:      get,
		update:   update,
		delete:   delete,
		list:     list,
		listPets: listPets,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r UserRequest) input() ucUser.Input {
	return ucUser.Input{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(201, gin.H{"id": user.ID})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.update.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
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
// LIST
// ======================================================

// List filtra por nome ou email com ?query=.
func (h *UserHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	users, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) ListPets(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pets, err := h.listPets.ByOwner(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, pets)
}
