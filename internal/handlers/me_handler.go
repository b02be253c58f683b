package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/middleware"
	ucUser "github.com/BruksfildServices01/vet-scheduler/internal/usecase/user"
	ucVet "github.com/BruksfildServices01/vet-scheduler/internal/usecase/vet"
)

type MeHandler struct {
	users *ucUser.GetUser
	vets  *ucVet.GetVet
}

func NewMeHandler(users *ucUser.GetUser, vets *ucVet.GetVet) *MeHandler {
	return &MeHandler{users: users, vets: vets}
}

// GetMe devolve o usuário ou o veterinário dono do token.
func (h *MeHandler) GetMe(c *gin.Context) {
	subjectID, ok := c.Get(middleware.ContextSubjectID)
	if !ok {
		httperr.Unauthorized(c, "subject_not_in_context", "Não autenticado.")
		return
	}
	id, ok := subjectID.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_subject", "Não autenticado.")
		return
	}

	ctx := c.Request.Context()

	switch c.MustGet(middleware.ContextRole).(auth.Role) {
	case auth.RoleVet:
		vet, err := h.vets.Execute(ctx, id)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		c.JSON(200, gin.H{
			"role": auth.RoleVet,
			"vet": gin.H{
				"id":        vet.ID,
				"name":      vet.Name,
				"specialty": vet.Specialty,
				"email":     vet.Email,
			},
		})

	default:
		user, err := h.users.Execute(ctx, id)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		c.JSON(200, gin.H{
			"role": auth.RoleUser,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}
