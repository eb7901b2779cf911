package controllers

import (
	"fmt"
	"net/url"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/importer"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

// Response is the common part of all JSON responses.
type Response struct {
	Success bool   `json:"success" example:"true"`                                // Whether the request succeeded
	Message string `json:"message,omitempty" example:"The transaction was saved"` // Human readable outcome
	Error   string `json:"error,omitempty" example:"description is required"`     // The error, if any
	Field   string `json:"field,omitempty" example:"description"`                 // The invalid field for validation errors
}

func success(message string) Response {
	return Response{Success: true, Message: message}
}

type Links struct {
	Self string `json:"self" example:"https://example.com/api/transactions/Infant%20Ministry/3"` // The record itself
}

func links(c *gin.Context, family models.Family, department models.Department, id uint64) Links {
	return Links{
		Self: fmt.Sprintf("%s/%s/%s/%d", httputil.BaseURL(c), family, url.PathEscape(department.String()), id),
	}
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.Transaction
	Links Links `json:"links"`
}

func newTransaction(c *gin.Context, t models.Transaction) Transaction {
	return Transaction{
		Transaction: t,
		Links:       links(c, models.FamilyTransaction, t.Department, t.ID),
	}
}

func newTransactions(c *gin.Context, ts []models.Transaction) []Transaction {
	data := make([]Transaction, 0, len(ts))
	for _, t := range ts {
		data = append(data, newTransaction(c, t))
	}
	return data
}

type TransactionResponse struct {
	Response
	Duplicate bool         `json:"duplicate,omitempty" example:"false"` // The request was a replay of an earlier create
	Data      *Transaction `json:"data,omitempty"`
}

type TransactionListResponse struct {
	Response
	Data    []Transaction  `json:"data"`
	Summary models.Summary `json:"summary"`
	Sort    string         `json:"sort" example:"date desc"` // The order of the data
}

// MinistryItem is the API representation of a ministry item.
type MinistryItem struct {
	models.MinistryItem
	Links Links `json:"links"`
}

func newMinistryItem(c *gin.Context, m models.MinistryItem) MinistryItem {
	return MinistryItem{
		MinistryItem: m,
		Links:        links(c, models.FamilyMinistry, m.Department, m.ID),
	}
}

func newMinistryItems(c *gin.Context, items []models.MinistryItem) []MinistryItem {
	data := make([]MinistryItem, 0, len(items))
	for _, m := range items {
		data = append(data, newMinistryItem(c, m))
	}
	return data
}

type MinistryItemResponse struct {
	Response
	Duplicate bool          `json:"duplicate,omitempty" example:"false"`
	Data      *MinistryItem `json:"data,omitempty"`
}

type MinistryItemListResponse struct {
	Response
	Data     []MinistryItem `json:"data"`     // All items
	Ministry []MinistryItem `json:"ministry"` // Items of kind Ministry
	Prayer   []MinistryItem `json:"prayer"`   // Items of kind PrayerRequest
	Sort     string         `json:"sort" example:"date desc"`
}

type LoginRequest struct {
	Password string `json:"password" example:"1234"`
}

type LoginResponse struct {
	Response
	Department models.Department `json:"department,omitempty" example:"Infant Ministry"`
	Token      string            `json:"token,omitempty"` // Bearer token for the department
}

type ImportResponse struct {
	Response
	Duplicate bool            `json:"duplicate,omitempty" example:"false"`
	Data      importer.Result `json:"data"`
}

type AnalysisResponse struct {
	Response
	Analysis string `json:"analysis,omitempty" example:"The expense is reasonable for a department event."`
}
