package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
)

const (
	ContextSubjectID = "subjectID"
	ContextRole      = "role"
)

func AuthMiddleware(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Cabeçalho Authorization ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Use o formato Bearer <token>.")
			c.Abort()
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			c.Abort()
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}
