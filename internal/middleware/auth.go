package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/httperr"
)

const ContextPrincipal = "principal"

type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Falta el encabezado Authorization.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Encabezado Authorization inválido.")
			c.Abort()
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido o expirado.")
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// Principal returns the caller set by AuthMiddleware.
func Principal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
