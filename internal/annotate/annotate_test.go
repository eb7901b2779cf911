package annotate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/annotate"
	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/types"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gemini(t *testing.T, handler http.HandlerFunc) *annotate.Gemini {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &annotate.Gemini{
		APIKey:     "secret-key",
		Model:      "gemini-1.5-flash-latest",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}
}

func transactionData() models.TransactionData {
	return models.TransactionData{
		Date:        types.NewDate(2024, 3, 3),
		Kind:        models.KindExpense,
		Category:    "Snacks",
		Description: "Snacks for Sunday school",
		Amount:      decimal.NewFromInt(35000),
	}
}

func TestNew(t *testing.T) {
	assert.IsType(t, annotate.Noop{}, annotate.New(config.Gemini{}))
	assert.IsType(t, &annotate.Gemini{}, annotate.New(config.Gemini{APIKey: "key", Model: "m", Timeout: time.Second}))
}

func TestNoop(t *testing.T) {
	_, err := annotate.Noop{}.AnnotateTransaction(context.Background(), transactionData())
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)

	_, err = annotate.Noop{}.AnnotateMinistryItem(context.Background(), models.MinistryItemData{})
	assert.ErrorIs(t, err, annotate.ErrDisabled)
}

func TestAnnotateTransaction(t *testing.T) {
	var prompt string

	g := gemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		require.Len(t, body.Contents[0].Parts, 1)
		prompt = body.Contents[0].Parts[0].Text

		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Looks "},{"text":"reasonable."}]}}]}`)
	})

	commentary, err := g.AnnotateTransaction(context.Background(), transactionData())
	require.NoError(t, err)
	assert.Equal(t, "Looks reasonable.", commentary)

	assert.Contains(t, prompt, "Date: 2024-03-03")
	assert.Contains(t, prompt, "Kind: Expense")
	assert.Contains(t, prompt, "Category: Snacks")
	assert.Contains(t, prompt, "Manager: not assigned")
	assert.Contains(t, prompt, "Amount: 35000 KRW")
}

func TestAnnotateMinistryItem(t *testing.T) {
	g := gemini(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "Content: Visit new families")

		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Effective."}]}}]}`)
	})

	commentary, err := g.AnnotateMinistryItem(context.Background(), models.MinistryItemData{
		Date:     types.NewDate(2024, 3, 3),
		Kind:     models.KindMinistry,
		Category: "Visitation",
		Content:  "Visit new families",
	})
	require.NoError(t, err)
	assert.Equal(t, "Effective.", commentary)
}

func TestAnnotateFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"rate limited", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTooManyRequests) }},
		{"broken json", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, `{"candidates":`) }},
		{"no candidates", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, `{"candidates":[]}`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gemini(t, tt.handler).AnnotateTransaction(context.Background(), transactionData())
			assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
		})
	}
}

func TestAnnotateTransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	g := &annotate.Gemini{APIKey: "secret-key", Model: "m", BaseURL: server.URL}
	_, err := g.AnnotateTransaction(context.Background(), transactionData())
	require.ErrorIs(t, err, models.ErrUpstreamUnavailable)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestAnnotateTimeout(t *testing.T) {
	g := gemini(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.AnnotateTransaction(ctx, transactionData())
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnnotateClientTimeout(t *testing.T) {
	g := gemini(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	g.HTTPClient.Timeout = 50 * time.Millisecond

	_, err := g.AnnotateTransaction(context.Background(), transactionData())
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotContains(t, err.Error(), "secret-key")
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBackground(t *testing.T) {
	var out syncBuffer
	logger := zerolog.New(&out)

	// The request context is cancelled immediately, the annotation still runs
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := annotate.Background(ctx, time.Second, logger, func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "all good", nil
	})
	<-done

	assert.Contains(t, out.String(), `"commentary":"all good"`)
}

func TestBackgroundFailure(t *testing.T) {
	var out syncBuffer
	logger := zerolog.New(&out)

	<-annotate.Background(context.Background(), time.Second, logger, func(ctx context.Context) (string, error) {
		return "", models.ErrUpstreamUnavailable
	})

	assert.Contains(t, out.String(), `"level":"warn"`)
	assert.Contains(t, out.String(), "commentary failed")
}

func TestBackgroundDisabled(t *testing.T) {
	var out syncBuffer
	logger := zerolog.New(&out)

	<-annotate.Background(context.Background(), time.Second, logger, func(ctx context.Context) (string, error) {
		return annotate.Noop{}.AnnotateTransaction(ctx, transactionData())
	})

	assert.Empty(t, strings.TrimSpace(out.String()))
}

func TestBackgroundTimeout(t *testing.T) {
	var out syncBuffer
	logger := zerolog.New(&out)

	<-annotate.Background(context.Background(), 20*time.Millisecond, logger, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	assert.Contains(t, out.String(), "deadline exceeded")
}
