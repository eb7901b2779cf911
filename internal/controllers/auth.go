package controllers

import (
	"fmt"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login routes.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:department", co.OptionsAuth)
	r.POST("/:department", co.Login)
}

// OptionsAuth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Router			/auth/{department} [options]
func (co Controller) OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Login checks the department password
//
//	@Summary		Log in
//	@Description	Checks the password of the department and returns a bearer token for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	LoginResponse
//	@Failure		400			{object}	Response
//	@Failure		401			{object}	Response
//	@Param			department	path		string			true	"Name of the department"
//	@Param			login		body		LoginRequest	true	"Password"
//	@Router			/auth/{department} [post]
func (co Controller) Login(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	var login LoginRequest
	if err := httputil.BindData(c, &login); err != nil {
		fail(c, err)
		return
	}

	if login.Password == "" {
		fail(c, fmt.Errorf("%w: password is required", models.ErrValidation))
		return
	}

	if err := co.Auth.Check(department, login.Password); err != nil {
		fail(c, err)
		return
	}

	token, err := co.Tokens.Issue(department)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Response:   success(fmt.Sprintf("Logged in to %s", department)),
		Department: department,
		Token:      token,
	})
}
