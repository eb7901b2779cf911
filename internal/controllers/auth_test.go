package controllers_test

import (
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

func (suite *TestSuiteStandard) login(department models.Department, password string) (int, controllers.LoginResponse) {
	r := suite.request(http.MethodPost, path("auth", department), controllers.LoginRequest{Password: password})

	var response controllers.LoginResponse
	suite.decodeResponse(&r, &response)
	return r.Code, response
}

func (suite *TestSuiteStandard) TestLogin() {
	code, response := suite.login(models.DepartmentInfant, "1234")
	suite.Require().Equal(http.StatusOK, code, response.Error)
	suite.Assert().Equal(models.DepartmentInfant, response.Department)
	suite.Assert().Equal("Logged in to Infant Ministry", response.Message)

	department, err := suite.controller.Tokens.Verify(response.Token)
	suite.Require().NoError(err)
	suite.Assert().Equal(models.DepartmentInfant, department)
}

func (suite *TestSuiteStandard) TestLoginFails() {
	tests := []struct {
		name       string
		department models.Department
		password   string
		status     int
	}{
		{"wrong password", models.DepartmentInfant, "2345", http.StatusUnauthorized},
		{"password of other department", models.DepartmentPrimary, "1234", http.StatusUnauthorized},
		{"no password", models.DepartmentInfant, "", http.StatusBadRequest},
		{"unknown department", "Choir", "1234", http.StatusBadRequest},
	}

	for _, tt := range tests {
		code, response := suite.login(tt.department, tt.password)
		suite.Assert().Equal(tt.status, code, tt.name)
		suite.Assert().Empty(response.Token, tt.name)
		suite.Assert().False(response.Success, tt.name)
		suite.Assert().NotEmpty(response.Message, tt.name)
		suite.Assert().Equal(response.Error, response.Message, tt.name)
	}
}

func (suite *TestSuiteStandard) TestRequireAuth() {
	suite.controller.RequireAuth = true
	suite.route()

	r := suite.request(http.MethodGet, path("transactions", models.DepartmentInfant), nil)
	suite.assertHTTPStatus(&r, http.StatusUnauthorized)

	_, response := suite.login(models.DepartmentInfant, "1234")
	bearer := map[string]string{"Authorization": "Bearer " + response.Token}

	r = suite.request(http.MethodGet, path("transactions", models.DepartmentInfant), nil, bearer)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodPost, path("transactions", models.DepartmentInfant), income("2024-01-15", 1), bearer)
	suite.assertHTTPStatus(&r, http.StatusCreated)

	// The token only opens its own department
	r = suite.request(http.MethodGet, path("transactions", models.DepartmentPrimary), nil, bearer)
	suite.assertHTTPStatus(&r, http.StatusForbidden)

	r = suite.request(http.MethodGet, path("export/accounting", models.DepartmentPrimary), nil, bearer)
	suite.assertHTTPStatus(&r, http.StatusForbidden)

	// Lookups and login stay open
	r = suite.request(http.MethodGet, "/departments", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	// Preflight requests carry no token
	r = suite.request(http.MethodOptions, path("transactions", models.DepartmentPrimary), nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestInvalidTokenWithoutRequiredAuth() {
	r := suite.request(http.MethodGet, path("transactions", models.DepartmentInfant), nil, map[string]string{"Authorization": "Bearer garbage"})
	suite.assertHTTPStatus(&r, http.StatusUnauthorized)
}
