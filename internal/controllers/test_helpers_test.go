package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/test"
	"github.com/shopspring/decimal"
)

func path(family string, department models.Department, rest ...any) string {
	p := fmt.Sprintf("/%s/%s", family, url.PathEscape(department.String()))
	for _, r := range rest {
		p = fmt.Sprintf("%s/%v", p, r)
	}
	return p
}

func key(token string) map[string]string {
	return map[string]string{controllers.IdempotencyHeader: token}
}

func amount(i int64) *decimal.Decimal {
	d := decimal.NewFromInt(i)
	return &d
}

func income(date string, value int64) models.TransactionEditable {
	return models.TransactionEditable{
		Date:        date,
		Kind:        models.KindIncome,
		Category:    "Donation",
		Description: "monthly gift",
		Manager:     "Kim",
		Amount:      amount(value),
	}
}

func expense(date string, value int64) models.TransactionEditable {
	return models.TransactionEditable{
		Date:        date,
		Kind:        models.KindExpense,
		Category:    "SuppliesCost",
		Description: "snacks",
		Amount:      amount(value),
	}
}

func activity(date, content string) models.MinistryItemEditable {
	return models.MinistryItemEditable{
		Date:     date,
		Kind:     models.KindMinistry,
		Category: "AnnualEvent",
		Content:  content,
	}
}

func prayer(date, content string) models.MinistryItemEditable {
	return models.MinistryItemEditable{
		Date:     date,
		Kind:     models.KindPrayerRequest,
		Category: "PrayerRequest",
		Content:  content,
	}
}

func (suite *TestSuiteStandard) createTransaction(department models.Department, editable models.TransactionEditable, headers ...map[string]string) controllers.Transaction {
	r := suite.request(http.MethodPost, path("transactions", department), editable, headers...)
	suite.assertHTTPStatus(&r, http.StatusCreated)

	var response controllers.TransactionResponse
	suite.decodeResponse(&r, &response)
	suite.Require().NotNil(response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) createMinistryItem(department models.Department, editable models.MinistryItemEditable) controllers.MinistryItem {
	r := suite.request(http.MethodPost, path("ministry-items", department), editable)
	suite.assertHTTPStatus(&r, http.StatusCreated)

	var response controllers.MinistryItemResponse
	suite.decodeResponse(&r, &response)
	suite.Require().NotNil(response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) listTransactions(department models.Department, query string) controllers.TransactionListResponse {
	r := suite.request(http.MethodGet, path("transactions", department)+query, nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.TransactionListResponse
	suite.decodeResponse(&r, &response)
	return response
}

func (suite *TestSuiteStandard) listMinistryItems(department models.Department, query string) controllers.MinistryItemListResponse {
	r := suite.request(http.MethodGet, path("ministry-items", department)+query, nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.MinistryItemListResponse
	suite.decodeResponse(&r, &response)
	return response
}

// upload returns a multipart body with the content as the file field.
func (suite *TestSuiteStandard) upload(name string, content []byte) ([]byte, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	suite.Require().NoError(err)

	_, err = w.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	return body.Bytes(), map[string]string{"Content-Type": mw.FormDataContentType()}
}

func (suite *TestSuiteStandard) testFile(name string) []byte {
	return test.LoadTestFile(suite.T(), name)
}

func transactionIDs(transactions []controllers.Transaction) []uint64 {
	result := make([]uint64, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, t.ID)
	}
	return result
}

func itemIDs(items []controllers.MinistryItem) []uint64 {
	result := make([]uint64, 0, len(items))
	for _, m := range items {
		result = append(result, m.ID)
	}
	return result
}
