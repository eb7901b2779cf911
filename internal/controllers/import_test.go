package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/importer"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/sheets"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) importFile(family string, department models.Department, name string, content []byte, headers ...map[string]string) (int, controllers.ImportResponse) {
	body, multipartHeaders := suite.upload(name, content)
	r := suite.request(http.MethodPost, path("import/"+family, department), body, append(headers, multipartHeaders)...)

	var response controllers.ImportResponse
	suite.decodeResponse(&r, &response)
	return r.Code, response
}

func (suite *TestSuiteStandard) TestImportAccounting() {
	content := suite.testFile("accounting.csv")

	code, response := suite.importFile("accounting", models.DepartmentInfant, "Accounting.CSV", content)
	suite.Require().Equal(http.StatusOK, code, response.Error)

	suite.Assert().Equal(2, response.Data.Imported)
	suite.Assert().Equal(4, response.Data.Failed)
	suite.Assert().Equal("2 imported, 4 failed", response.Message)
	suite.Assert().Equal(importer.ID(content), response.Data.ImportID)

	lines := make([]int, 0, len(response.Data.Errors))
	for _, e := range response.Data.Errors {
		lines = append(lines, e.Line)
	}
	suite.Assert().Equal([]int{4, 5, 6, 8}, lines)

	list := suite.listTransactions(models.DepartmentInfant, "?direction=asc")
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal(models.KindIncome, list.Data[0].Kind)
	suite.Assert().Equal("monthly gift, January", list.Data[0].Description)
	suite.Assert().True(list.Data[0].Amount.Equal(decimal.NewFromInt(50000)))
	suite.Assert().Equal(`picnic "summer"`, list.Data[1].Description)
	suite.Assert().True(list.Data[1].Amount.Equal(decimal.RequireFromString("1250.50")))
}

func (suite *TestSuiteStandard) TestImportMinistry() {
	code, response := suite.importFile("ministry", models.DepartmentPrimary, "ministry.csv", suite.testFile("ministry.csv"))
	suite.Require().Equal(http.StatusOK, code, response.Error)

	suite.Assert().Equal(2, response.Data.Imported)
	suite.Assert().Equal(2, response.Data.Failed)

	list := suite.listMinistryItems(models.DepartmentPrimary, "?direction=asc")
	suite.Assert().Len(list.Ministry, 1)
	suite.Require().Len(list.Prayer, 1)
	suite.Assert().Equal("teachers for the new term", list.Prayer[0].Content)
}

func (suite *TestSuiteStandard) TestImportIdempotent() {
	content := suite.testFile("accounting.csv")

	code, _ := suite.importFile("accounting", models.DepartmentInfant, "accounting.csv", content, key("upload-1"))
	suite.Assert().Equal(http.StatusOK, code)

	code, response := suite.importFile("accounting", models.DepartmentInfant, "accounting.csv", content, key("upload-1"))
	suite.Assert().Equal(http.StatusOK, code)
	suite.Assert().True(response.Duplicate)
	suite.Assert().Equal(2, response.Data.Imported)

	suite.Assert().Len(suite.listTransactions(models.DepartmentInfant, "").Data, 2, "The second upload must not import again")
}

func (suite *TestSuiteStandard) TestImportFails() {
	tests := []struct {
		name   string
		file   string
		query  string
		status int
	}{
		{"wrong suffix", "accounting.txt", "", http.StatusBadRequest},
		{"unknown source", "accounting.csv", "?source=ftp", http.StatusBadRequest},
		{"no spreadsheet", "accounting.csv", "?source=sheet", http.StatusBadRequest},
	}

	for _, tt := range tests {
		body, headers := suite.upload(tt.file, []byte("date,kind\n"))
		r := suite.request(http.MethodPost, path("import/accounting", models.DepartmentInfant)+tt.query, body, headers)
		suite.assertHTTPStatus(&r, tt.status)
	}

	r := suite.request(http.MethodPost, path("import/accounting", models.DepartmentInfant), nil)
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "you must send a file")
}

func (suite *TestSuiteStandard) TestImportEmptyFile() {
	code, response := suite.importFile("ministry", models.DepartmentPrimary, "ministry.csv", []byte{})
	suite.Require().Equal(http.StatusOK, code, response.Error)
	suite.Assert().Equal(0, response.Data.Imported)
	suite.Assert().Equal(0, response.Data.Failed)
}

func (suite *TestSuiteStandard) TestImportSheet() {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Query().Get("sheet")
		if strings.Contains(requested, "Activities") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("date,kind,category,description,manager,amount\n2024-06-01,Income,Budget,first half,,100000\n"))
	}))
	defer server.Close()

	client := sheets.New(config.Sheets{SpreadsheetID: "sheet-id"})
	client.BaseURL = server.URL
	suite.controller.Sheets = client
	suite.route()

	r := suite.request(http.MethodPost, path("import/accounting", models.DepartmentHighSchool)+"?source=sheet", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Assert().Equal(models.DepartmentHighSchool.String(), requested)

	var response controllers.ImportResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal(1, response.Data.Imported)

	// A missing sheet is an empty import
	r = suite.request(http.MethodPost, path("import/ministry", models.DepartmentHighSchool)+"?source=sheet", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Assert().Equal(models.DepartmentHighSchool.String()+" Activities", requested)
}

func (suite *TestSuiteStandard) TestImportSheetUnavailable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := sheets.New(config.Sheets{SpreadsheetID: "sheet-id"})
	client.BaseURL = server.URL
	suite.controller.Sheets = client
	suite.route()

	r := suite.request(http.MethodPost, path("import/accounting", models.DepartmentHighSchool)+"?source=sheet", nil)
	suite.assertHTTPStatus(&r, http.StatusBadGateway)
}
