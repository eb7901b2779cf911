package controllers_test

import (
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

func (suite *TestSuiteStandard) TestGetDepartments() {
	r := suite.request(http.MethodGet, "/departments", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.DepartmentListResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal(models.Departments(), response.Data)
	suite.Assert().Len(response.Data, 7)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.CategoryListResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Contains(response.Transaction[models.KindIncome], "Donation")
	suite.Assert().NotContains(response.Transaction[models.KindIncome], "Event")
	suite.Assert().Equal([]string{"PrayerRequest"}, response.Ministry[models.KindPrayerRequest])
}
