package controllers

import (
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

type DepartmentListResponse struct {
	Response
	Data []models.Department `json:"data"`
}

type CategoryListResponse struct {
	Response
	Transaction map[models.TransactionKind][]string `json:"transaction"` // Transaction categories by kind
	Ministry    map[models.MinistryKind][]string    `json:"ministry"`    // Ministry item categories by kind
}

// RegisterLookupRoutes registers the routes for the fixed lookups.
func (co Controller) RegisterLookupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/departments", co.OptionsLookup)
	r.GET("/departments", co.GetDepartments)
	r.OPTIONS("/categories", co.OptionsLookup)
	r.GET("/categories", co.GetCategories)
}

// OptionsLookup returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Lookups
//	@Success		204
//	@Router			/departments [options]
//	@Router			/categories [options]
func (co Controller) OptionsLookup(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetDepartments returns all departments
//
//	@Summary		List departments
//	@Description	Returns all departments in display order
//	@Tags			Lookups
//	@Produce		json
//	@Success		200	{object}	DepartmentListResponse
//	@Router			/departments [get]
func (co Controller) GetDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, DepartmentListResponse{
		Response: success(""),
		Data:     models.Departments(),
	})
}

// GetCategories returns the allowed categories
//
//	@Summary		List categories
//	@Description	Returns the allowed categories for every kind of transaction and ministry item
//	@Tags			Lookups
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	transaction := make(map[models.TransactionKind][]string)
	for _, kind := range models.TransactionKinds() {
		transaction[kind] = models.TransactionCategories(kind)
	}

	ministry := make(map[models.MinistryKind][]string)
	for _, kind := range models.MinistryKinds() {
		ministry[kind] = models.MinistryCategories(kind)
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Response:    success(""),
		Transaction: transaction,
		Ministry:    ministry,
	})
}
