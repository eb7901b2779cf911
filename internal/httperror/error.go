// Package httperror holds the body of error responses that are written
// outside of the controllers, e.g. by middlewares.
package httperror

import "github.com/gin-gonic/gin"

// Error is the body of an error response.
type Error struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"You must specify a department"`
	Error   string `json:"error" example:"You must specify a department"`
}

// New returns the body for the error.
func New(e error) Error {
	return Error{
		Message: e.Error(),
		Error:   e.Error(),
	}
}

// Abort writes the error with the status and stops the handler chain.
func Abort(c *gin.Context, status int, e error) {
	c.AbortWithStatusJSON(status, New(e))
}
