package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/annotate"
	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

type fakeAnnotator struct {
	delay time.Duration
}

func (f fakeAnnotator) wait(ctx context.Context) error {
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f fakeAnnotator) AnnotateTransaction(ctx context.Context, data models.TransactionData) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s of %s for %s looks fine", data.Kind, data.Amount, data.Description), nil
}

func (f fakeAnnotator) AnnotateMinistryItem(ctx context.Context, data models.MinistryItemData) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	return "A good plan for " + data.Content, nil
}

func (suite *TestSuiteStandard) TestAnalyzeDisabled() {
	r := suite.request(http.MethodPost, "/ai/analyze/accounting", income("2024-01-15", 50000))
	suite.assertHTTPStatus(&r, http.StatusBadGateway)

	r = suite.request(http.MethodPost, "/ai/analyze/ministry", activity("2024-03-31", "Easter"))
	suite.assertHTTPStatus(&r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestAnalyze() {
	suite.controller.Annotator = fakeAnnotator{}
	suite.route()

	r := suite.request(http.MethodPost, "/ai/analyze/accounting", income("2024-01-15", 50000))
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.AnalysisResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal("Income of 50000 for monthly gift looks fine", response.Analysis)

	r = suite.request(http.MethodPost, "/ai/analyze/ministry", activity("2024-03-31", "Easter"))
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal("A good plan for Easter", response.Analysis)

	// Nothing is stored
	suite.Assert().Empty(suite.listTransactions(models.DepartmentInfant, "").Data)
}

func (suite *TestSuiteStandard) TestAnalyzeTimeout() {
	suite.controller.Annotator = fakeAnnotator{delay: time.Minute}
	suite.controller.AnnotateTimeout = 10 * time.Millisecond
	suite.route()

	r := suite.request(http.MethodPost, "/ai/analyze/accounting", income("2024-01-15", 50000))
	suite.assertHTTPStatus(&r, http.StatusGatewayTimeout)
}

// A commentary service that does not answer in time is a gateway timeout,
// one that fails is a bad gateway.
func (suite *TestSuiteStandard) TestAnalyzeGeminiTimeout() {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	suite.controller.Annotator = &annotate.Gemini{APIKey: "key", Model: "gemini-1.5-flash-latest", BaseURL: slow.URL, HTTPClient: slow.Client()}
	suite.controller.AnnotateTimeout = 20 * time.Millisecond
	suite.route()

	r := suite.request(http.MethodPost, "/ai/analyze/accounting", income("2024-01-15", 50000))
	suite.assertHTTPStatus(&r, http.StatusGatewayTimeout)

	r = suite.request(http.MethodPost, "/ai/analyze/ministry", activity("2024-03-31", "Easter"))
	suite.assertHTTPStatus(&r, http.StatusGatewayTimeout)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	suite.controller.Annotator = &annotate.Gemini{APIKey: "key", Model: "gemini-1.5-flash-latest", BaseURL: failing.URL, HTTPClient: failing.Client()}
	suite.controller.AnnotateTimeout = time.Second
	suite.route()

	r = suite.request(http.MethodPost, "/ai/analyze/accounting", income("2024-01-15", 50000))
	suite.assertHTTPStatus(&r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestAnalyzeInvalid() {
	suite.controller.Annotator = fakeAnnotator{}
	suite.route()

	invalid := income("2024-01-15", 50000)
	invalid.Category = "Salary"

	r := suite.request(http.MethodPost, "/ai/analyze/accounting", invalid)
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
}

// Commentary never blocks or fails a save.
func (suite *TestSuiteStandard) TestCreateWithSlowCommentary() {
	suite.controller.Annotator = fakeAnnotator{delay: time.Minute}
	suite.controller.AnnotateTimeout = 10 * time.Millisecond
	suite.route()

	start := time.Now()
	suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 50000))
	suite.Assert().Less(time.Since(start), 5*time.Second)
}
