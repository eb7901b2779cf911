// Package sheets reads department ledgers from a published spreadsheet.
//
// The spreadsheet holds one sheet per department and record family. Sheets are
// exported as CSV by the visualization endpoint, which needs no credentials for
// spreadsheets shared by link.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

// DefaultBaseURL is the URL of the spreadsheet service.
const DefaultBaseURL = "https://docs.google.com/spreadsheets/d"

// maxSize limits the size of a single exported sheet.
const maxSize = 10 << 20

// ErrDisabled is returned when no spreadsheet is configured.
var ErrDisabled = errors.New("no spreadsheet is configured")

// Client fetches sheets as CSV.
type Client struct {
	SpreadsheetID string
	BaseURL       string
	HTTPClient    *http.Client
}

// New returns a client for the configured spreadsheet.
func New(cfg config.Sheets) *Client {
	return &Client{
		SpreadsheetID: cfg.SpreadsheetID,
		BaseURL:       DefaultBaseURL,
		HTTPClient:    http.DefaultClient,
	}
}

// Enabled reports if a spreadsheet is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.SpreadsheetID != ""
}

// SheetName returns the name of the sheet holding the records of the family for the department.
func SheetName(department models.Department, family models.Family) string {
	if family == models.FamilyMinistry {
		return fmt.Sprintf("%s Activities", department)
	}
	return department.String()
}

// Fetch returns the CSV content of the sheet for the department and family.
//
// A sheet that does not exist yields empty content and no error.
func (c *Client) Fetch(ctx context.Context, department models.Department, family models.Family) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	query := url.Values{}
	query.Set("tqx", "out:csv")
	query.Set("sheet", SheetName(department, family))

	endpoint := fmt.Sprintf("%s/%s/gviz/tq?%s", strings.TrimSuffix(c.BaseURL, "/"), url.PathEscape(c.SpreadsheetID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	// The endpoint answers with 400 for sheets that do not exist
	if resp.StatusCode == http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		return []byte{}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: spreadsheet returned status %d", models.ErrUpstreamUnavailable, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstreamUnavailable, err)
	}

	if len(content) > maxSize {
		return nil, fmt.Errorf("%w: the sheet is larger than %d bytes", models.ErrValidation, maxSize)
	}

	return content, nil
}
