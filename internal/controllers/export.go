package controllers

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/ledgercsv"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the CSV export routes.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/accounting/:department", co.OptionsExport)
	r.GET("/accounting/:department", co.ExportAccounting)
	r.OPTIONS("/ministry/:department", co.OptionsExport)
	r.GET("/ministry/:department", co.ExportMinistry)
}

// OptionsExport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Export
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Router			/export/accounting/{department} [options]
//	@Router			/export/ministry/{department} [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// ExportAccounting exports the transactions of a department
//
//	@Summary		Export transactions
//	@Description	Returns all transactions of the department as CSV in the order they were created
//	@Tags			Export
//	@Produce		text/csv
//	@Success		200
//	@Failure		400			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string	true	"Name of the department"
//	@Router			/export/accounting/{department} [get]
func (co Controller) ExportAccounting(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	transactions, err := co.Store.ListTransactions(c.Request.Context(), department, "")
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := ledgercsv.WriteTransactions(&buf, transactions); err != nil {
		fail(c, err)
		return
	}

	sendCSV(c, department, "accounting", buf.Bytes())
}

// ExportMinistry exports the ministry items of a department
//
//	@Summary		Export ministry items
//	@Description	Returns all ministry items of the department as CSV in the order they were created
//	@Tags			Export
//	@Produce		text/csv
//	@Success		200
//	@Failure		400			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string	true	"Name of the department"
//	@Router			/export/ministry/{department} [get]
func (co Controller) ExportMinistry(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	items, err := co.Store.ListMinistryItems(c.Request.Context(), department, "")
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := ledgercsv.WriteMinistryItems(&buf, items); err != nil {
		fail(c, err)
		return
	}

	sendCSV(c, department, "ministry", buf.Bytes())
}

// sendCSV sends the content as a file download.
func sendCSV(c *gin.Context, department models.Department, name string, content []byte) {
	filename := fmt.Sprintf("%s %s %s.csv", department, name, types.Today())
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}
