// Package annotate asks a text generation service for commentary on records.
//
// Commentary is optional. When it fails for a record that was just created
// or updated, the failure is logged and never reported to the client.
package annotate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/rs/zerolog"
)

// Annotator returns commentary for records.
type Annotator interface {
	AnnotateTransaction(ctx context.Context, t models.TransactionData) (string, error)
	AnnotateMinistryItem(ctx context.Context, m models.MinistryItemData) (string, error)
}

// ErrDisabled is returned by Noop.
var ErrDisabled = fmt.Errorf("%w: commentary is not configured", models.ErrUpstreamUnavailable)

// Noop is used when no commentary service is configured.
type Noop struct{}

// AnnotateTransaction always fails with ErrDisabled.
func (Noop) AnnotateTransaction(context.Context, models.TransactionData) (string, error) {
	return "", ErrDisabled
}

// AnnotateMinistryItem always fails with ErrDisabled.
func (Noop) AnnotateMinistryItem(context.Context, models.MinistryItemData) (string, error) {
	return "", ErrDisabled
}

// Background runs fn detached from the request with the timeout.
//
// The request context only contributes its values, its cancellation is ignored,
// so that commentary is still produced after the response was sent.
// The returned channel is closed when fn has returned.
func Background(ctx context.Context, timeout time.Duration, logger zerolog.Logger, fn func(context.Context) (string, error)) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		commentary, err := fn(ctx)
		if errors.Is(err, ErrDisabled) {
			return
		}

		if err != nil {
			logger.Warn().Err(err).Msg("commentary failed")
			return
		}

		logger.Info().Str("commentary", commentary).Msg("commentary")
	}()

	return done
}
