package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterMinistryItemRoutes registers the routes for ministry items with
// the RouterGroup that is passed.
func (co Controller) RegisterMinistryItemRoutes(r *gin.RouterGroup) {
	// Department ledger
	{
		r.OPTIONS("/:department", co.OptionsMinistryItems)
		r.GET("/:department", co.GetMinistryItems)
		r.POST("/:department", co.CreateMinistryItem)
	}

	// Ministry item with ID
	{
		r.OPTIONS("/:department/:id", co.OptionsMinistryItemDetail)
		r.PUT("/:department/:id", co.UpdateMinistryItem)
		r.DELETE("/:department/:id", co.DeleteMinistryItem)
	}
}

// OptionsMinistryItems returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Ministry Items
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Router			/ministry-items/{department} [options]
func (co Controller) OptionsMinistryItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsMinistryItemDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Ministry Items
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Param			id			path	int		true	"ID of the ministry item"
//	@Router			/ministry-items/{department}/{id} [options]
func (co Controller) OptionsMinistryItemDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// CreateMinistryItem creates a ministry item
//
//	@Summary		Create ministry item
//	@Description	Creates a ministry item or prayer request. Requests with an Idempotency-Key that was used before return the first result.
//	@Tags			Ministry Items
//	@Accept			json
//	@Produce		json
//	@Success		201				{object}	MinistryItemResponse
//	@Success		200				{object}	MinistryItemResponse	"Replay of an earlier request"
//	@Failure		400				{object}	Response
//	@Failure		409				{object}	Response	"The first request with the Idempotency-Key is still being processed"
//	@Failure		500				{object}	Response
//	@Param			department		path		string						true	"Name of the department"
//	@Param			Idempotency-Key	header		string						false	"Submission token"
//	@Param			item			body		models.MinistryItemEditable	true	"Ministry item"
//	@Router			/ministry-items/{department} [post]
func (co Controller) CreateMinistryItem(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	var editable models.MinistryItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	data, err := editable.Validate()
	if err != nil {
		fail(c, err)
		return
	}

	item, duplicate, err := submit(co, c, department, string(models.FamilyMinistry), func() (models.MinistryItem, error) {
		return co.Store.AppendMinistryItem(c.Request.Context(), department, data)
	})
	if err != nil {
		fail(c, err)
		return
	}

	message := "The ministry item was saved"
	if duplicate {
		message = "The ministry item was already saved"
	} else {
		co.annotate(c, func(ctx context.Context) (string, error) {
			return co.Annotator.AnnotateMinistryItem(ctx, item.MinistryItemData)
		})
	}

	result := newMinistryItem(c, item)
	c.JSON(created(duplicate), MinistryItemResponse{
		Response:  success(message),
		Duplicate: duplicate,
		Data:      &result,
	})
}

// GetMinistryItems returns the ministry items of a department
//
//	@Summary		List ministry items
//	@Description	Returns the ministry items of the department, also grouped into ministry and prayer requests. Without sort parameters, the most recent items come first.
//	@Tags			Ministry Items
//	@Produce		json
//	@Success		200			{object}	MinistryItemListResponse
//	@Failure		400			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string	true	"Name of the department"
//	@Param			kind		query		string	false	"Only return items of this kind"	Enums(Ministry, PrayerRequest)
//	@Param			sort		query		string	false	"Field to sort by"				Enums(date, kind, category)
//	@Param			direction	query		string	false	"Sort direction"				Enums(asc, desc)
//	@Router			/ministry-items/{department} [get]
func (co Controller) GetMinistryItems(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	spec, err := models.ParseSortSpec(c.Query("sort"), c.Query("direction"))
	if err != nil {
		fail(c, err)
		return
	}

	kind := models.MinistryKind(c.Query("kind"))
	if kind != "" && !kind.Valid() {
		fail(c, fmt.Errorf("%w: kind '%s' is not valid", models.ErrValidation, kind))
		return
	}

	items, err := co.Store.ListMinistryItems(c.Request.Context(), department, kind)
	if err != nil {
		fail(c, err)
		return
	}

	items = models.SortMinistryItems(items, spec)
	ministry, prayer := models.PartitionMinistryItems(items)

	c.JSON(http.StatusOK, MinistryItemListResponse{
		Response: success(""),
		Data:     newMinistryItems(c, items),
		Ministry: newMinistryItems(c, ministry),
		Prayer:   newMinistryItems(c, prayer),
		Sort:     spec.String(),
	})
}

// UpdateMinistryItem updates a ministry item
//
//	@Summary		Update ministry item
//	@Description	Replaces all fields of a ministry item
//	@Tags			Ministry Items
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	MinistryItemResponse
//	@Failure		400			{object}	Response
//	@Failure		404			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string						true	"Name of the department"
//	@Param			id			path		int							true	"ID of the ministry item"
//	@Param			item		body		models.MinistryItemEditable	true	"Ministry item"
//	@Router			/ministry-items/{department}/{id} [put]
func (co Controller) UpdateMinistryItem(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var editable models.MinistryItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	data, err := editable.Validate()
	if err != nil {
		fail(c, err)
		return
	}

	item, err := co.Store.UpdateMinistryItem(c.Request.Context(), department, id, data)
	if err != nil {
		fail(c, err)
		return
	}

	co.annotate(c, func(ctx context.Context) (string, error) {
		return co.Annotator.AnnotateMinistryItem(ctx, item.MinistryItemData)
	})

	result := newMinistryItem(c, item)
	c.JSON(http.StatusOK, MinistryItemResponse{
		Response: success("The ministry item was updated"),
		Data:     &result,
	})
}

// DeleteMinistryItem deletes a ministry item
//
//	@Summary		Delete ministry item
//	@Description	Deletes a ministry item. Deleting a ministry item that does not exist succeeds.
//	@Tags			Ministry Items
//	@Produce		json
//	@Success		200			{object}	Response
//	@Failure		400			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string	true	"Name of the department"
//	@Param			id			path		int		true	"ID of the ministry item"
//	@Router			/ministry-items/{department}/{id} [delete]
func (co Controller) DeleteMinistryItem(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	err = co.Store.RemoveMinistryItem(c.Request.Context(), department, id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusOK, success("The ministry item was already deleted"))
		return
	}

	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, success("The ministry item was deleted"))
}
