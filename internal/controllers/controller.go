// Package controllers implements the HTTP API of the ledger.
package controllers

import (
	"context"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/annotate"
	"github.com/UnimationKorea/finance-church-personal/internal/auth"
	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/idempotency"
	"github.com/UnimationKorea/finance-church-personal/internal/sheets"
	"github.com/UnimationKorea/finance-church-personal/internal/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// IdempotencyHeader is the request header carrying the submission token of a create.
const IdempotencyHeader = "Idempotency-Key"

// Controller holds everything the handlers need. There is no global state.
type Controller struct {
	Store       store.Store
	Submissions *idempotency.Cache
	Auth        *auth.Authenticator
	Tokens      *auth.Tokens
	RequireAuth bool

	Annotator       annotate.Annotator
	AnnotateTimeout time.Duration
	Sheets          *sheets.Client
}

// New creates the controller for the configuration.
func New(cfg config.Config, s store.Store) (Controller, error) {
	authenticator, err := auth.NewAuthenticator(cfg.Auth.Passwords, bcrypt.DefaultCost)
	if err != nil {
		return Controller{}, err
	}

	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	if err != nil {
		return Controller{}, err
	}

	return Controller{
		Store:           s,
		Submissions:     idempotency.New(cfg.Idempotency.Size, cfg.Idempotency.TTL),
		Auth:            authenticator,
		Tokens:          tokens,
		RequireAuth:     cfg.Auth.Require,
		Annotator:       annotate.New(cfg.Gemini),
		AnnotateTimeout: cfg.Gemini.Timeout,
		Sheets:          sheets.New(cfg.Sheets),
	}, nil
}

// annotate requests commentary in the background. Its outcome is only logged.
func (co Controller) annotate(c *gin.Context, fn func(context.Context) (string, error)) {
	if co.Annotator == nil {
		return
	}

	logger := log.With().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Logger()
	annotate.Background(c.Request.Context(), co.AnnotateTimeout, logger, fn)
}
