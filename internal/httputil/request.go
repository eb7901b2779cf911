package httputil

import (
	"errors"
	"io"
	"strconv"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BaseURL returns the configured base URL of the API.
func BaseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}

// ParseID parses the ID in the path parameter.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || parsed == 0 {
		return 0, ErrInvalidID
	}

	return parsed, nil
}

// ParseDepartment parses the department in the path parameter.
func ParseDepartment(c *gin.Context) (models.Department, error) {
	return models.ParseDepartment(c.Param("department"))
}

// BindData binds the JSON body of the request to data, which must be a pointer.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
