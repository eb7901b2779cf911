package controllers_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/store"
)

type brokenStore struct {
	store.Store
}

func (brokenStore) Ping(context.Context) error {
	return errors.New("connection refused")
}

func (suite *TestSuiteStandard) TestGetHealthz() {
	r := suite.request(http.MethodGet, "/healthz", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestGetHealthzStoreDown() {
	suite.controller.Store = brokenStore{Store: store.NewMemory()}
	suite.route()

	r := suite.request(http.MethodGet, "/healthz", nil)
	suite.assertHTTPStatus(&r, http.StatusServiceUnavailable)

	var response controllers.Response
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal("the record store is not available", response.Error)
	suite.Assert().NotContains(response.Error, "refused")
}

func (suite *TestSuiteStandard) TestOptionsHealthz() {
	r := suite.request(http.MethodOptions, "/healthz", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
