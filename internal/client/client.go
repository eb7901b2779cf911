// Package client talks to the ledger API the way the department pages do.
//
// Besides the plain HTTP calls it has the form side of the protocol: a
// Gate that keeps one form from submitting twice and a Form that switches
// between creating and updating records.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/controllers"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/rs/zerolog/log"
)

// Client calls the ledger API.
type Client struct {
	// BaseURL is the API root, e.g. https://ledger.example.com/api
	BaseURL    string
	HTTPClient *http.Client

	// Token is sent as bearer token. Login sets it.
	Token string

	// Seen holds the submission tokens of the session. All forms share it.
	Seen *TokenSet
}

// New returns a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Seen:       NewTokenSet(1000, 12*time.Hour),
	}
}

// Error is a failed API call. It unwraps to the matching models error.
type Error struct {
	Status  int
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("the API returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		if e.Field != "" {
			return models.ValidationError{Field: e.Field, Message: e.Message}
		}
		return models.ErrValidation
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.ErrAuthentication
	case http.StatusConflict:
		return models.ErrDuplicateSubmission
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return models.ErrUpstreamUnavailable
	}
	return models.ErrGeneral
}

func departmentPath(prefix string, department models.Department, id ...uint64) string {
	p := fmt.Sprintf("/%s/%s", prefix, url.PathEscape(department.String()))
	if len(id) > 0 {
		p = fmt.Sprintf("%s/%d", p, id[0])
	}
	return p
}

// request sends the request and returns the response if its status is 2xx.
// The caller must close the body.
func (c *Client) request(ctx context.Context, method, path string, body any, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 300 {
		defer res.Body.Close()

		var response controllers.Response
		apiErr := &Error{Status: res.StatusCode}
		if json.NewDecoder(res.Body).Decode(&response) == nil {
			apiErr.Message = response.Error
			apiErr.Field = response.Field
		}

		log.Debug().Str("method", method).Str("path", path).Int("status", res.StatusCode).Msg(apiErr.Error())
		return nil, apiErr
	}

	return res, nil
}

// call sends the request and decodes the JSON response into target.
func (c *Client) call(ctx context.Context, method, path string, body any, headers map[string]string, target any) error {
	res, err := c.request(ctx, method, path, body, headers)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("could not decode the response of %s %s: %w", method, path, err)
	}
	return nil
}

// Login checks the password of the department and keeps the token for later calls.
func (c *Client) Login(ctx context.Context, department models.Department, password string) error {
	var response controllers.LoginResponse
	err := c.call(ctx, http.MethodPost, departmentPath("auth", department), controllers.LoginRequest{Password: password}, nil, &response)
	if err != nil {
		return err
	}

	c.Token = response.Token
	return nil
}

func idempotency(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{controllers.IdempotencyHeader: token}
}

// TransactionList is the ledger of a department.
type TransactionList struct {
	Records []models.Transaction
	Summary models.Summary
}

// CreateTransaction creates a transaction. A non-empty token is sent as idempotency key,
// duplicate is true when the server had already seen it.
func (c *Client) CreateTransaction(ctx context.Context, department models.Department, editable models.TransactionEditable, token string) (transaction models.Transaction, duplicate bool, err error) {
	var response controllers.TransactionResponse
	err = c.call(ctx, http.MethodPost, departmentPath("transactions", department), editable, idempotency(token), &response)
	if err != nil {
		return models.Transaction{}, false, err
	}

	if response.Data == nil {
		return models.Transaction{}, false, errors.New("the response contains no transaction")
	}
	return response.Data.Transaction, response.Duplicate, nil
}

// ListTransactions returns the transactions in the order of spec.
func (c *Client) ListTransactions(ctx context.Context, department models.Department, spec models.SortSpec) (TransactionList, error) {
	var response controllers.TransactionListResponse
	err := c.call(ctx, http.MethodGet, departmentPath("transactions", department)+sortQuery(spec), nil, nil, &response)
	if err != nil {
		return TransactionList{}, err
	}

	list := TransactionList{
		Records: make([]models.Transaction, 0, len(response.Data)),
		Summary: response.Summary,
	}
	for _, t := range response.Data {
		list.Records = append(list.Records, t.Transaction)
	}
	return list, nil
}

// UpdateTransaction replaces the fields of the transaction.
func (c *Client) UpdateTransaction(ctx context.Context, department models.Department, id uint64, editable models.TransactionEditable) (models.Transaction, error) {
	var response controllers.TransactionResponse
	err := c.call(ctx, http.MethodPut, departmentPath("transactions", department, id), editable, nil, &response)
	if err != nil {
		return models.Transaction{}, err
	}

	if response.Data == nil {
		return models.Transaction{}, errors.New("the response contains no transaction")
	}
	return response.Data.Transaction, nil
}

// DeleteTransaction deletes the transaction. Deleting it twice succeeds.
func (c *Client) DeleteTransaction(ctx context.Context, department models.Department, id uint64) error {
	return c.call(ctx, http.MethodDelete, departmentPath("transactions", department, id), nil, nil, nil)
}

// MinistryList holds the ministry items of a department, all and grouped by kind.
type MinistryList struct {
	Records  []models.MinistryItem
	Ministry []models.MinistryItem
	Prayer   []models.MinistryItem
}

// CreateMinistryItem creates a ministry item, see CreateTransaction for the token.
func (c *Client) CreateMinistryItem(ctx context.Context, department models.Department, editable models.MinistryItemEditable, token string) (item models.MinistryItem, duplicate bool, err error) {
	var response controllers.MinistryItemResponse
	err = c.call(ctx, http.MethodPost, departmentPath("ministry-items", department), editable, idempotency(token), &response)
	if err != nil {
		return models.MinistryItem{}, false, err
	}

	if response.Data == nil {
		return models.MinistryItem{}, false, errors.New("the response contains no ministry item")
	}
	return response.Data.MinistryItem, response.Duplicate, nil
}

// ListMinistryItems returns the ministry items of the department in the order of spec.
func (c *Client) ListMinistryItems(ctx context.Context, department models.Department, spec models.SortSpec) (MinistryList, error) {
	var response controllers.MinistryItemListResponse
	err := c.call(ctx, http.MethodGet, departmentPath("ministry-items", department)+sortQuery(spec), nil, nil, &response)
	if err != nil {
		return MinistryList{}, err
	}

	return MinistryList{
		Records:  unwrapItems(response.Data),
		Ministry: unwrapItems(response.Ministry),
		Prayer:   unwrapItems(response.Prayer),
	}, nil
}

func unwrapItems(items []controllers.MinistryItem) []models.MinistryItem {
	result := make([]models.MinistryItem, 0, len(items))
	for _, m := range items {
		result = append(result, m.MinistryItem)
	}
	return result
}

// UpdateMinistryItem replaces the fields of the item.
func (c *Client) UpdateMinistryItem(ctx context.Context, department models.Department, id uint64, editable models.MinistryItemEditable) (models.MinistryItem, error) {
	var response controllers.MinistryItemResponse
	err := c.call(ctx, http.MethodPut, departmentPath("ministry-items", department, id), editable, nil, &response)
	if err != nil {
		return models.MinistryItem{}, err
	}

	if response.Data == nil {
		return models.MinistryItem{}, errors.New("the response contains no ministry item")
	}
	return response.Data.MinistryItem, nil
}

// DeleteMinistryItem deletes the item. Deleting it twice succeeds.
func (c *Client) DeleteMinistryItem(ctx context.Context, department models.Department, id uint64) error {
	return c.call(ctx, http.MethodDelete, departmentPath("ministry-items", department, id), nil, nil, nil)
}

// Export writes the CSV export of the family to w.
func (c *Client) Export(ctx context.Context, department models.Department, family models.Family, w io.Writer) error {
	prefix := "export/accounting"
	if family == models.FamilyMinistry {
		prefix = "export/ministry"
	}

	res, err := c.request(ctx, http.MethodGet, departmentPath(prefix, department), nil, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	_, err = io.Copy(w, res.Body)
	return err
}

func sortQuery(spec models.SortSpec) string {
	if spec == (models.SortSpec{}) {
		return ""
	}

	return "?" + url.Values{
		"sort":      {string(spec.Field)},
		"direction": {string(spec.Direction)},
	}.Encode()
}
