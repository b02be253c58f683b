package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	ucUser "github.com/BruksfildServices01/vet-scheduler/internal/usecase/user"
	ucVet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/vet"
)

type AuthHandler struct {
	userLogin *ucUser.LoginUser
	vetLogin  *ucVet.LoginVet
}

func NewAuthHandler(userLogin *ucUser.LoginUser, vetLogin *ucVet.LoginVet) *AuthHandler {
	return &AuthHandler{userLogin: userLogin, vetLogin: vetLogin}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) UserLogin(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.userLogin.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"token": token,
		"id":    user.ID,
		"role":  auth.RoleUser,
	})
}

func (h *AuthHandler) VetLogin(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, vet, err := h.vetLogin.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"token": token,
		"id":    vet.ID,
		"role":  auth.RoleVet,
	})
}
