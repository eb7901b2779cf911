package controllers

import (
	"context"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAnalyzeRoutes registers the routes that return commentary on request.
func (co Controller) RegisterAnalyzeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/accounting", co.OptionsAnalyze)
	r.POST("/accounting", co.AnalyzeTransaction)
	r.OPTIONS("/ministry", co.OptionsAnalyze)
	r.POST("/ministry", co.AnalyzeMinistryItem)
}

// OptionsAnalyze returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Analyze
//	@Success		204
//	@Router			/ai/analyze/accounting [options]
//	@Router			/ai/analyze/ministry [options]
func (co Controller) OptionsAnalyze(c *gin.Context) {
	httputil.OptionsPost(c)
}

// AnalyzeTransaction returns commentary on a transaction
//
//	@Summary		Analyze transaction
//	@Description	Returns commentary on whether the transaction is appropriate for a church department. Nothing is stored.
//	@Tags			Analyze
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	AnalysisResponse
//	@Failure		400			{object}	Response
//	@Failure		502			{object}	Response	"The commentary service failed"
//	@Failure		504			{object}	Response	"The commentary service did not answer in time"
//	@Param			transaction	body		models.TransactionEditable	true	"Transaction"
//	@Router			/ai/analyze/accounting [post]
func (co Controller) AnalyzeTransaction(c *gin.Context) {
	var editable models.TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	data, err := editable.Validate()
	if err != nil {
		fail(c, err)
		return
	}

	co.analyze(c, func(ctx context.Context) (string, error) {
		return co.Annotator.AnnotateTransaction(ctx, data)
	})
}

// AnalyzeMinistryItem returns commentary on a ministry item
//
//	@Summary		Analyze ministry item
//	@Description	Returns commentary on whether the ministry plan is effective. Nothing is stored.
//	@Tags			Analyze
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	AnalysisResponse
//	@Failure		400		{object}	Response
//	@Failure		502		{object}	Response	"The commentary service failed"
//	@Failure		504		{object}	Response	"The commentary service did not answer in time"
//	@Param			item	body		models.MinistryItemEditable	true	"Ministry item"
//	@Router			/ai/analyze/ministry [post]
func (co Controller) AnalyzeMinistryItem(c *gin.Context) {
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

	co.analyze(c, func(ctx context.Context) (string, error) {
		return co.Annotator.AnnotateMinistryItem(ctx, data)
	})
}

// analyze waits for the commentary. Here, the caller asked for it, so failures are returned.
func (co Controller) analyze(c *gin.Context, fn func(context.Context) (string, error)) {
	ctx := c.Request.Context()
	if co.AnnotateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, co.AnnotateTimeout)
		defer cancel()
	}

	analysis, err := fn(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{
		Response: success(""),
		Analysis: analysis,
	})
}
