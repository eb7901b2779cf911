package controllers_test

import (
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/idempotency"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/test"
	"github.com/UnimationKorea/finance-church-personal/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	transaction := suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 50000))

	suite.Assert().Equal(uint64(1), transaction.ID)
	suite.Assert().Equal(models.DepartmentInfant, transaction.Department)
	suite.Assert().Equal(types.NewDate(2024, 1, 15), transaction.Date)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromInt(50000)))
	suite.Assert().WithinDuration(transaction.CreatedAt, transaction.UpdatedAt, 0)
	suite.Assert().Equal("http://example.com/api/transactions/Infant%20Ministry/1", transaction.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateTransactionIDsIncrease() {
	for i := 1; i <= 3; i++ {
		transaction := suite.createTransaction(models.DepartmentPrimary, expense("2024-02-01", int64(i*1000)))
		suite.Assert().Equal(uint64(i), transaction.ID)
	}

	// Other departments count on their own
	transaction := suite.createTransaction(models.DepartmentHighSchool, expense("2024-02-01", 1000))
	suite.Assert().Equal(uint64(1), transaction.ID)
}

func (suite *TestSuiteStandard) TestCreateTransactionValidation() {
	tests := []struct {
		name   string
		modify func(*models.TransactionEditable)
		field  string
	}{
		{"missing date", func(e *models.TransactionEditable) { e.Date = "" }, "date"},
		{"invalid date", func(e *models.TransactionEditable) { e.Date = "15.01.2024" }, "date"},
		{"missing kind", func(e *models.TransactionEditable) { e.Kind = "" }, "kind"},
		{"unknown kind", func(e *models.TransactionEditable) { e.Kind = "Transfer" }, "kind"},
		{"category of other kind", func(e *models.TransactionEditable) { e.Category = "Event" }, "category"},
		{"blank description", func(e *models.TransactionEditable) { e.Description = "   " }, "description"},
		{"missing amount", func(e *models.TransactionEditable) { e.Amount = nil }, "amount"},
		{"negative amount", func(e *models.TransactionEditable) { e.Amount = amount(-1) }, "amount"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			editable := income("2024-01-15", 50000)
			tt.modify(&editable)

			r := test.Request(t, suite.engine, http.MethodPost, "http://example.com/api"+path("transactions", models.DepartmentInfant), editable)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response controllers.Response
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.field, response.Field)
			assert.NotEmpty(t, response.Error)
		})
	}

	suite.Assert().Empty(suite.listTransactions(models.DepartmentInfant, "").Data, "Invalid transactions must not be stored")
}

func (suite *TestSuiteStandard) TestCreateTransactionBadRequest() {
	tests := []struct {
		name       string
		department string
		body       any
		status     int
	}{
		{"unknown department", "Choir", income("2024-01-15", 1), http.StatusBadRequest},
		{"broken JSON", url.PathEscape(models.DepartmentInfant.String()), `{"date": `, http.StatusBadRequest},
		{"empty body", url.PathEscape(models.DepartmentInfant.String()), "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, "/transactions/"+tt.department, tt.body)
		suite.assertHTTPStatus(&r, tt.status)
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionIdempotent() {
	first := suite.request(http.MethodPost, path("transactions", models.DepartmentInfant), income("2024-01-15", 50000), key("form-1"))
	suite.assertHTTPStatus(&first, http.StatusCreated)

	var created controllers.TransactionResponse
	suite.decodeResponse(&first, &created)
	suite.Assert().False(created.Duplicate)

	// The retry has a different body, but the token decides
	second := suite.request(http.MethodPost, path("transactions", models.DepartmentInfant), income("2024-01-16", 70000), key("form-1"))
	suite.assertHTTPStatus(&second, http.StatusOK)

	var replayed controllers.TransactionResponse
	suite.decodeResponse(&second, &replayed)
	suite.Assert().True(replayed.Duplicate)
	suite.Assert().Equal(created.Data.ID, replayed.Data.ID)
	suite.Assert().Equal(created.Data.Date, replayed.Data.Date)

	suite.Assert().Len(suite.listTransactions(models.DepartmentInfant, "").Data, 1)

	// Tokens are scoped by department and family
	suite.createTransaction(models.DepartmentPrimary, income("2024-01-15", 50000), key("form-1"))
	r := suite.request(http.MethodPost, path("ministry-items", models.DepartmentInfant), activity("2024-01-15", "retreat"), key("form-1"))
	suite.assertHTTPStatus(&r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCreateTransactionConcurrentSubmissions() {
	var wg sync.WaitGroup
	codes := make(chan int, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := suite.request(http.MethodPost, path("transactions", models.DepartmentKindergarten), expense("2024-03-01", 3000), key("double-click"))
			codes <- r.Code
		}()
	}
	wg.Wait()
	close(codes)

	created := 0
	for code := range codes {
		suite.Assert().Contains([]int{http.StatusCreated, http.StatusOK, http.StatusConflict}, code)
		if code == http.StatusCreated {
			created++
		}
	}

	suite.Assert().Equal(1, created)
	suite.Assert().Len(suite.listTransactions(models.DepartmentKindergarten, "").Data, 1)
}

func (suite *TestSuiteStandard) TestCreateTransactionInFlight() {
	k := idempotency.Key(models.DepartmentInfant.String(), string(models.FamilyTransaction), "pending")
	_, fresh := suite.controller.Submissions.Claim(k)
	suite.Require().True(fresh)

	r := suite.request(http.MethodPost, path("transactions", models.DepartmentInfant), income("2024-01-15", 1), key("pending"))
	suite.assertHTTPStatus(&r, http.StatusConflict)
	suite.Assert().Empty(suite.listTransactions(models.DepartmentInfant, "").Data)
}

func (suite *TestSuiteStandard) TestCreateTransactionWithoutKey() {
	suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 1))
	suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 1))

	suite.Assert().Len(suite.listTransactions(models.DepartmentInfant, "").Data, 2)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	suite.createTransaction(models.DepartmentInfant, income("2024-01-10", 300))
	suite.createTransaction(models.DepartmentInfant, expense("2024-01-20", 100))
	suite.createTransaction(models.DepartmentInfant, expense("2024-01-15", 50))

	response := suite.listTransactions(models.DepartmentInfant, "")
	suite.Assert().Equal([]uint64{2, 3, 1}, transactionIDs(response.Data))
	suite.Assert().Equal("date desc", response.Sort)
	suite.Assert().True(response.Summary.Income.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(response.Summary.Expense.Equal(decimal.NewFromInt(150)))
	suite.Assert().True(response.Summary.Balance.Equal(decimal.NewFromInt(150)))

	byAmount := suite.listTransactions(models.DepartmentInfant, "?sort=amount&direction=asc")
	suite.Assert().Equal([]uint64{3, 2, 1}, transactionIDs(byAmount.Data))
	suite.Assert().Equal("amount asc", byAmount.Sort)

	// The summary does not depend on the filter
	incomeOnly := suite.listTransactions(models.DepartmentInfant, "?kind=Income")
	suite.Assert().Equal([]uint64{1}, transactionIDs(incomeOnly.Data))
	suite.Assert().True(incomeOnly.Summary.Balance.Equal(decimal.NewFromInt(150)))

	// Other departments are not affected
	suite.Assert().Empty(suite.listTransactions(models.DepartmentPrimary, "").Data)
}

func (suite *TestSuiteStandard) TestGetTransactionsBadQuery() {
	for _, query := range []string{"?sort=manager", "?direction=up", "?kind=Transfer"} {
		r := suite.request(http.MethodGet, path("transactions", models.DepartmentInfant)+query, nil)
		suite.assertHTTPStatus(&r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	transaction := suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 50000))

	update := expense("2024-01-31", 20000)
	r := suite.request(http.MethodPut, path("transactions", models.DepartmentInfant, transaction.ID), update)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.TransactionResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().Equal(models.KindExpense, response.Data.Kind)
	suite.Assert().Equal("", response.Data.Manager, "All fields are replaced")
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(20000)))
	suite.Assert().Equal(transaction.CreatedAt, response.Data.CreatedAt)

	list := suite.listTransactions(models.DepartmentInfant, "")
	suite.Require().Len(list.Data, 1)
	suite.Assert().True(list.Summary.Balance.Equal(decimal.NewFromInt(-20000)))
}

func (suite *TestSuiteStandard) TestUpdateTransactionFails() {
	transaction := suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 50000))

	invalid := income("2024-01-15", 50000)
	invalid.Description = ""

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"invalid data", path("transactions", models.DepartmentInfant, transaction.ID), invalid, http.StatusBadRequest},
		{"unknown id", path("transactions", models.DepartmentInfant, 17), income("2024-01-15", 1), http.StatusNotFound},
		{"other department", path("transactions", models.DepartmentPrimary, transaction.ID), income("2024-01-15", 1), http.StatusNotFound},
		{"id zero", path("transactions", models.DepartmentInfant, 0), income("2024-01-15", 1), http.StatusBadRequest},
		{"id not a number", path("transactions", models.DepartmentInfant, "first"), income("2024-01-15", 1), http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPut, tt.path, tt.body)
		suite.assertHTTPStatus(&r, tt.status)
	}

	list := suite.listTransactions(models.DepartmentInfant, "")
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("monthly gift", list.Data[0].Description, "Failed updates must not change the transaction")
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	first := suite.createTransaction(models.DepartmentInfant, income("2024-01-15", 1))
	second := suite.createTransaction(models.DepartmentInfant, income("2024-01-16", 2))

	r := suite.request(http.MethodDelete, path("transactions", models.DepartmentInfant, second.ID), nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Assert().Equal([]uint64{first.ID}, transactionIDs(suite.listTransactions(models.DepartmentInfant, "").Data))

	// Deleting again succeeds
	r = suite.request(http.MethodDelete, path("transactions", models.DepartmentInfant, second.ID), nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.Response
	suite.decodeResponse(&r, &response)
	suite.Assert().Contains(response.Message, "already deleted")

	// Ids are not reused
	third := suite.createTransaction(models.DepartmentInfant, income("2024-01-17", 3))
	suite.Assert().Equal(uint64(3), third.ID)
}

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	tests := []struct {
		path  string
		allow string
	}{
		{path("transactions", models.DepartmentInfant), "OPTIONS, GET, POST"},
		{path("transactions", models.DepartmentInfant, 1), "OPTIONS, PUT, DELETE"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodOptions, tt.path, nil)
		suite.assertHTTPStatus(&r, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
	}
}
