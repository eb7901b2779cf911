package controllers_test

import (
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

func (suite *TestSuiteStandard) TestCreateMinistryItem() {
	item := suite.createMinistryItem(models.DepartmentElementary, activity("2024-03-31", "Easter egg hunt"))

	suite.Assert().Equal(uint64(1), item.ID)
	suite.Assert().Equal(models.KindMinistry, item.Kind)
	suite.Assert().Equal("http://example.com/api/ministry-items/Elementary%20Ministry/1", item.Links.Self)

	// Ids of ministry items do not depend on transactions
	suite.createTransaction(models.DepartmentElementary, income("2024-03-31", 1))
	item = suite.createMinistryItem(models.DepartmentElementary, prayer("2024-04-01", "new teachers"))
	suite.Assert().Equal(uint64(2), item.ID)
}

func (suite *TestSuiteStandard) TestCreateMinistryItemValidation() {
	tests := []struct {
		name     string
		editable models.MinistryItemEditable
		field    string
	}{
		{"missing content", activity("2024-03-31", " "), "content"},
		{"bad date", activity("March 31", "retreat"), "date"},
		{"prayer category for activity", models.MinistryItemEditable{Date: "2024-03-31", Kind: models.KindMinistry, Category: "PrayerRequest", Content: "x"}, "category"},
		{"unknown kind", models.MinistryItemEditable{Date: "2024-03-31", Kind: "Worship", Category: "Event", Content: "x"}, "kind"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, path("ministry-items", models.DepartmentElementary), tt.editable)
		suite.assertHTTPStatus(&r, http.StatusBadRequest)

		var response controllers.Response
		suite.decodeResponse(&r, &response)
		suite.Assert().Equal(tt.field, response.Field, tt.name)
	}

	suite.Assert().Empty(suite.listMinistryItems(models.DepartmentElementary, "").Data)
}

func (suite *TestSuiteStandard) TestCreateMinistryItemIdempotent() {
	headers := key("activity-form")

	first := suite.request(http.MethodPost, path("ministry-items", models.DepartmentMiddleSchool), activity("2024-05-05", "picnic"), headers)
	suite.assertHTTPStatus(&first, http.StatusCreated)

	second := suite.request(http.MethodPost, path("ministry-items", models.DepartmentMiddleSchool), activity("2024-05-05", "picnic"), headers)
	suite.assertHTTPStatus(&second, http.StatusOK)

	var response controllers.MinistryItemResponse
	suite.decodeResponse(&second, &response)
	suite.Assert().True(response.Duplicate)
	suite.Assert().Equal(uint64(1), response.Data.ID)

	suite.Assert().Len(suite.listMinistryItems(models.DepartmentMiddleSchool, "").Data, 1)
}

func (suite *TestSuiteStandard) TestGetMinistryItems() {
	suite.createMinistryItem(models.DepartmentEnglishWorship, activity("2024-03-31", "Easter"))
	suite.createMinistryItem(models.DepartmentEnglishWorship, prayer("2024-04-07", "new members"))
	suite.createMinistryItem(models.DepartmentEnglishWorship, activity("2024-05-05", "picnic"))

	response := suite.listMinistryItems(models.DepartmentEnglishWorship, "")
	suite.Assert().Equal([]uint64{3, 2, 1}, itemIDs(response.Data))
	suite.Assert().Equal([]uint64{3, 1}, itemIDs(response.Ministry))
	suite.Assert().Equal([]uint64{2}, itemIDs(response.Prayer))

	ascending := suite.listMinistryItems(models.DepartmentEnglishWorship, "?direction=asc")
	suite.Assert().Equal([]uint64{1, 2, 3}, itemIDs(ascending.Data))

	prayers := suite.listMinistryItems(models.DepartmentEnglishWorship, "?kind=PrayerRequest")
	suite.Assert().Equal([]uint64{2}, itemIDs(prayers.Data))
	suite.Assert().Empty(prayers.Ministry)

	r := suite.request(http.MethodGet, path("ministry-items", models.DepartmentEnglishWorship)+"?kind=Income", nil)
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateMinistryItem() {
	item := suite.createMinistryItem(models.DepartmentElementary, activity("2024-03-31", "Easter"))

	r := suite.request(http.MethodPut, path("ministry-items", models.DepartmentElementary, item.ID), prayer("2024-04-01", "healing"))
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.MinistryItemResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal(item.ID, response.Data.ID)
	suite.Assert().Equal(models.KindPrayerRequest, response.Data.Kind)
	suite.Assert().Equal("healing", response.Data.Content)

	r = suite.request(http.MethodPut, path("ministry-items", models.DepartmentElementary, 99), prayer("2024-04-01", "healing"))
	suite.assertHTTPStatus(&r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMinistryItem() {
	item := suite.createMinistryItem(models.DepartmentElementary, activity("2024-03-31", "Easter"))

	for i := 0; i < 2; i++ {
		r := suite.request(http.MethodDelete, path("ministry-items", models.DepartmentElementary, item.ID), nil)
		suite.assertHTTPStatus(&r, http.StatusOK)
	}

	suite.Assert().Empty(suite.listMinistryItems(models.DepartmentElementary, "").Data)

	item = suite.createMinistryItem(models.DepartmentElementary, activity("2024-04-01", "retreat"))
	suite.Assert().Equal(uint64(2), item.ID)
}
