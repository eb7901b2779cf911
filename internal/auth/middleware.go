package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/UnimationKorea/finance-church-personal/internal/httperror"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContextDepartment is the gin context key for the department of a verified token.
const ContextDepartment = "department"

var (
	ErrMissingToken    = errors.New("an Authorization header with a bearer token is required")
	ErrWrongDepartment = errors.New("the token is not valid for this department")
)

// Middleware verifies the bearer token of requests for a department.
//
// When required is false, requests without a token are let through. A token
// that is sent is always verified. OPTIONS requests are never checked.
func Middleware(tokens *Tokens, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if header == "" || !ok {
			if required {
				httperror.Abort(c, http.StatusUnauthorized, ErrMissingToken)
				return
			}
			c.Next()
			return
		}

		department, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			httperror.Abort(c, http.StatusUnauthorized, err)
			return
		}

		if param := c.Param("department"); param != "" {
			requested, err := models.ParseDepartment(param)
			if err != nil {
				httperror.Abort(c, http.StatusBadRequest, err)
				return
			}

			if requested != department {
				log.Info().Str("request-id", requestid.Get(c)).Str("token", department.String()).Str("requested", requested.String()).Msg("department mismatch")
				httperror.Abort(c, http.StatusForbidden, ErrWrongDepartment)
				return
			}
		}

		c.Set(ContextDepartment, department)
		c.Next()
	}
}
