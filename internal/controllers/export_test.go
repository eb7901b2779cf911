package controllers_test

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"github.com/UnimationKorea/finance-church-personal/internal/ledgercsv"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/types"
)

func (suite *TestSuiteStandard) TestExportAccounting() {
	suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 50000))
	suite.createTransaction(models.DepartmentInfant, expense("2024-01-10", 20000))

	r := suite.request(http.MethodGet, path("export/accounting", models.DepartmentInfant), nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))

	_, params, err := mime.ParseMediaType(r.Header().Get("Content-Disposition"))
	suite.Require().NoError(err)
	suite.Assert().Equal("Infant Ministry accounting "+types.Today().String()+".csv", params["filename"])

	lines, err := ledgercsv.ReadTransactions(bytes.NewReader(r.Body.Bytes()))
	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)

	// Exports are in insertion order, not sorted
	suite.Assert().Equal("2024-01-15", lines[0].Editable.Date)
	suite.Assert().Equal("2024-01-10", lines[1].Editable.Date)
	suite.Assert().NoError(lines[1].Err)
}

func (suite *TestSuiteStandard) TestExportMinistry() {
	suite.createMinistryItem(models.DepartmentPrimary, activity("2024-03-31", "Easter, with eggs"))
	suite.createMinistryItem(models.DepartmentPrimary, prayer("2024-04-07", "teachers"))

	r := suite.request(http.MethodGet, path("export/ministry", models.DepartmentPrimary), nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	lines, err := ledgercsv.ReadMinistryItems(bytes.NewReader(r.Body.Bytes()))
	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.Assert().Equal("Easter, with eggs", lines[0].Editable.Content)
	suite.Assert().Equal(models.KindPrayerRequest, lines[1].Editable.Kind)
}

// An export can be imported into another department without losses.
func (suite *TestSuiteStandard) TestExportImportRoundTrip() {
	suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 50000))
	suite.createTransaction(models.DepartmentInfant, expense("2024-01-10", 20000))

	r := suite.request(http.MethodGet, path("export/accounting", models.DepartmentInfant), nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	code, response := suite.importFile("accounting", models.DepartmentPrimary, "export.csv", r.Body.Bytes())
	suite.Require().Equal(http.StatusOK, code, response.Error)
	suite.Assert().Equal(2, response.Data.Imported)
	suite.Assert().Equal(0, response.Data.Failed)

	original := suite.listTransactions(models.DepartmentInfant, "")
	imported := suite.listTransactions(models.DepartmentPrimary, "")
	suite.Require().Len(imported.Data, len(original.Data))
	for i := range original.Data {
		suite.Assert().Equal(original.Data[i].TransactionData.Date, imported.Data[i].TransactionData.Date)
		suite.Assert().Equal(original.Data[i].Description, imported.Data[i].Description)
		suite.Assert().True(original.Data[i].Amount.Equal(imported.Data[i].Amount))
	}
	suite.Assert().True(original.Summary.Balance.Equal(imported.Summary.Balance))
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	r := suite.request(http.MethodGet, path("export/ministry", models.DepartmentHighSchool), nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	header := strings.Join(ledgercsv.MinistryHeader, ",")
	suite.Assert().Contains(r.Body.String(), header)
}

func (suite *TestSuiteStandard) TestExportUnknownDepartment() {
	r := suite.request(http.MethodGet, "/export/accounting/Choir", nil)
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
}
