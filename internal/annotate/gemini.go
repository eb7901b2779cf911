package annotate

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

	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

// DefaultBaseURL is the endpoint of the Gemini API.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini requests commentary from the Gemini generateContent API.
type Gemini struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns the annotator for the configuration. Without an API key, it returns Noop.
func New(cfg config.Gemini) Annotator {
	if cfg.APIKey == "" {
		return Noop{}
	}

	return &Gemini{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// AnnotateTransaction asks whether the transaction suits a church department.
func (g *Gemini) AnnotateTransaction(ctx context.Context, t models.TransactionData) (string, error) {
	manager := t.Manager
	if manager == "" {
		manager = "not assigned"
	}

	prompt := fmt.Sprintf(`Please review the following transaction of a church education department:
Date: %s
Kind: %s
Category: %s
Description: %s
Manager: %s
Amount: %s KRW

Briefly assess whether this transaction is appropriate and reasonable from the perspective of running a church department.`,
		t.Date, t.Kind, t.Category, t.Description, manager, t.Amount)

	return g.generate(ctx, prompt)
}

// AnnotateMinistryItem asks how effective the planned ministry is.
func (g *Gemini) AnnotateMinistryItem(ctx context.Context, m models.MinistryItemData) (string, error) {
	prompt := fmt.Sprintf(`Please review the following ministry record of a church education department:
Date: %s
Kind: %s
Category: %s
Content: %s

Briefly assess whether this plan is effective and appropriate from the perspective of a church education division.`,
		m.Date, m.Kind, m.Category, m.Content)

	return g.generate(ctx, prompt)
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", strings.TrimSuffix(g.BaseURL, "/"), url.PathEscape(g.Model), url.QueryEscape(g.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		// The request URL contains the API key, only report the cause
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
			if urlErr.Timeout() && !errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
			}
		}
		return "", fmt.Errorf("%w: %w", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status %d", models.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: could not decode response: %w", models.ErrUpstreamUnavailable, err)
	}

	var text strings.Builder
	if len(result.Candidates) > 0 {
		for _, p := range result.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("%w: the response contains no text", models.ErrUpstreamUnavailable)
	}

	return text.String(), nil
}
