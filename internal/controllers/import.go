package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/importer"
	"github.com/UnimationKorea/finance-church-personal/internal/ledgercsv"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// Import sources
const (
	SourceFile  = "file"
	SourceSheet = "sheet"
)

// RegisterImportRoutes registers the CSV import routes.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/accounting/:department", co.OptionsImport)
	r.POST("/accounting/:department", co.ImportAccounting)
	r.OPTIONS("/ministry/:department", co.OptionsImport)
	r.POST("/ministry/:department", co.ImportMinistry)
}

// OptionsImport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Import
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Router			/import/accounting/{department} [options]
//	@Router			/import/ministry/{department} [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ImportAccounting imports transactions
//
//	@Summary		Import transactions
//	@Description	Creates one transaction for every line of a CSV file. Lines that cannot be imported are counted and reported, they do not stop the import.
//	@Tags			Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200				{object}	ImportResponse
//	@Failure		400				{object}	Response
//	@Failure		502				{object}	Response	"The spreadsheet could not be read"
//	@Failure		500				{object}	Response
//	@Param			department		path		string	true	"Name of the department"
//	@Param			source			query		string	false	"Where to read the CSV from"	Enums(file, sheet)	default(file)
//	@Param			file			formData	file	false	"File to import, required for the file source"
//	@Param			Idempotency-Key	header		string	false	"Submission token"
//	@Router			/import/accounting/{department} [post]
func (co Controller) ImportAccounting(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	content, err := co.importContent(c, department, models.FamilyTransaction)
	if err != nil {
		fail(c, err)
		return
	}

	result, duplicate, err := submit(co, c, department, "import/"+string(models.FamilyTransaction), func() (importer.Result, error) {
		lines, err := ledgercsv.ReadTransactions(bytes.NewReader(content))
		if err != nil {
			return importer.Result{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}

		result := importer.Import(c.Request.Context(), lines, func(ctx context.Context, editable models.TransactionEditable) error {
			data, err := editable.Validate()
			if err != nil {
				return err
			}

			_, err = co.Store.AppendTransaction(ctx, department, data)
			return err
		})
		result.ImportID = importer.ID(content)
		return result, nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	imported(c, result, duplicate)
}

// ImportMinistry imports ministry items
//
//	@Summary		Import ministry items
//	@Description	Creates one ministry item for every line of a CSV file. Lines that cannot be imported are counted and reported, they do not stop the import.
//	@Tags			Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200				{object}	ImportResponse
//	@Failure		400				{object}	Response
//	@Failure		502				{object}	Response	"The spreadsheet could not be read"
//	@Failure		500				{object}	Response
//	@Param			department		path		string	true	"Name of the department"
//	@Param			source			query		string	false	"Where to read the CSV from"	Enums(file, sheet)	default(file)
//	@Param			file			formData	file	false	"File to import, required for the file source"
//	@Param			Idempotency-Key	header		string	false	"Submission token"
//	@Router			/import/ministry/{department} [post]
func (co Controller) ImportMinistry(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	content, err := co.importContent(c, department, models.FamilyMinistry)
	if err != nil {
		fail(c, err)
		return
	}

	result, duplicate, err := submit(co, c, department, "import/"+string(models.FamilyMinistry), func() (importer.Result, error) {
		lines, err := ledgercsv.ReadMinistryItems(bytes.NewReader(content))
		if err != nil {
			return importer.Result{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
		}

		result := importer.Import(c.Request.Context(), lines, func(ctx context.Context, editable models.MinistryItemEditable) error {
			data, err := editable.Validate()
			if err != nil {
				return err
			}

			_, err = co.Store.AppendMinistryItem(ctx, department, data)
			return err
		})
		result.ImportID = importer.ID(content)
		return result, nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	imported(c, result, duplicate)
}

func imported(c *gin.Context, result importer.Result, duplicate bool) {
	message := fmt.Sprintf("%d imported, %d failed", result.Imported, result.Failed)
	if duplicate {
		message = "This import was already processed. " + message
	}

	c.JSON(http.StatusOK, ImportResponse{
		Response:  success(message),
		Duplicate: duplicate,
		Data:      result,
	})
}

// importContent returns the CSV to import from the source of the request.
func (co Controller) importContent(c *gin.Context, department models.Department, family models.Family) ([]byte, error) {
	switch c.DefaultQuery("source", SourceFile) {
	case SourceFile:
		f, err := getUploadedFile(c, "*.csv")
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return io.ReadAll(f)

	case SourceSheet:
		if !co.Sheets.Enabled() {
			return nil, errSheetsDisabled
		}
		return co.Sheets.Fetch(c.Request.Context(), department, family)
	}

	return nil, errUnknownSource
}

// getUploadedFile returns the uploaded file if its name matches the pattern.
// The name is matched case insensitively.
func getUploadedFile(c *gin.Context, pattern string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !glob.Glob(pattern, strings.ToLower(formFile.Filename)) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, pattern)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}
