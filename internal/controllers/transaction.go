package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/httputil"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Department ledger
	{
		r.OPTIONS("/:department", co.OptionsTransactions)
		r.GET("/:department", co.GetTransactions)
		r.POST("/:department", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:department/:id", co.OptionsTransactionDetail)
		r.PUT("/:department/:id", co.UpdateTransaction)
		r.DELETE("/:department/:id", co.DeleteTransaction)
	}
}

// OptionsTransactions returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Router			/transactions/{department} [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Param			department	path	string	true	"Name of the department"
//	@Param			id			path	int		true	"ID of the transaction"
//	@Router			/transactions/{department}/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// CreateTransaction creates a transaction
//
//	@Summary		Create transaction
//	@Description	Creates a transaction. Requests with an Idempotency-Key that was used before return the first result.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		201				{object}	TransactionResponse
//	@Success		200				{object}	TransactionResponse	"Replay of an earlier request"
//	@Failure		400				{object}	Response
//	@Failure		409				{object}	Response	"The first request with the Idempotency-Key is still being processed"
//	@Failure		500				{object}	Response
//	@Param			department		path		string						true	"Name of the department"
//	@Param			Idempotency-Key	header		string						false	"Submission token"
//	@Param			transaction		body		models.TransactionEditable	true	"Transaction"
//	@Router			/transactions/{department} [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	var editable models.TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	data, err := editable.Validate()
	if err != nil {
		fail(c, err)
		return
	}

	transaction, duplicate, err := submit(co, c, department, string(models.FamilyTransaction), func() (models.Transaction, error) {
		return co.Store.AppendTransaction(c.Request.Context(), department, data)
	})
	if err != nil {
		fail(c, err)
		return
	}

	message := "The transaction was saved"
	if duplicate {
		message = "The transaction was already saved"
	} else {
		co.annotate(c, func(ctx context.Context) (string, error) {
			return co.Annotator.AnnotateTransaction(ctx, transaction.TransactionData)
		})
	}

	result := newTransaction(c, transaction)
	c.JSON(created(duplicate), TransactionResponse{
		Response:  success(message),
		Duplicate: duplicate,
		Data:      &result,
	})
}

// GetTransactions returns the transactions of a department
//
//	@Summary		List transactions
//	@Description	Returns the transactions of the department with the summary of the whole ledger. Without sort parameters, the most recent transactions come first.
//	@Tags			Transactions
//	@Produce		json
//	@Success		200			{object}	TransactionListResponse
//	@Failure		400			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string	true	"Name of the department"
//	@Param			kind		query		string	false	"Only return transactions of this kind"	Enums(Income, Expense)
//	@Param			sort		query		string	false	"Field to sort by"						Enums(date, kind, category, amount)
//	@Param			direction	query		string	false	"Sort direction"						Enums(asc, desc)
//	@Router			/transactions/{department} [get]
func (co Controller) GetTransactions(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	spec, err := models.ParseSortSpec(c.Query("sort"), c.Query("direction"))
	if err != nil {
		fail(c, err)
		return
	}

	kind := models.TransactionKind(c.Query("kind"))
	if kind != "" && !kind.Valid() {
		fail(c, fmt.Errorf("%w: kind '%s' is not valid", models.ErrValidation, kind))
		return
	}

	// The summary always covers the whole ledger, the kind only filters the data
	transactions, err := co.Store.ListTransactions(c.Request.Context(), department, "")
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Response: success(""),
		Data:     newTransactions(c, models.SortTransactions(models.FilterTransactions(transactions, kind), spec)),
		Summary:  models.Summarize(transactions),
		Sort:     spec.String(),
	})
}

// UpdateTransaction updates a transaction
//
//	@Summary		Update transaction
//	@Description	Replaces all fields of a transaction
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	TransactionResponse
//	@Failure		400			{object}	Response
//	@Failure		404			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string						true	"Name of the department"
//	@Param			id			path		int							true	"ID of the transaction"
//	@Param			transaction	body		models.TransactionEditable	true	"Transaction"
//	@Router			/transactions/{department}/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var editable models.TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	data, err := editable.Validate()
	if err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.Store.UpdateTransaction(c.Request.Context(), department, id, data)
	if err != nil {
		fail(c, err)
		return
	}

	co.annotate(c, func(ctx context.Context) (string, error) {
		return co.Annotator.AnnotateTransaction(ctx, transaction.TransactionData)
	})

	result := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{
		Response: success("The transaction was updated"),
		Data:     &result,
	})
}

// DeleteTransaction deletes a transaction
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction. Deleting a transaction that does not exist succeeds.
//	@Tags			Transactions
//	@Produce		json
//	@Success		200			{object}	Response
//	@Failure		400			{object}	Response
//	@Failure		500			{object}	Response
//	@Param			department	path		string	true	"Name of the department"
//	@Param			id			path		int		true	"ID of the transaction"
//	@Router			/transactions/{department}/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	department, err := httputil.ParseDepartment(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	err = co.Store.RemoveTransaction(c.Request.Context(), department, id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusOK, success("The transaction was already deleted"))
		return
	}

	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, success("The transaction was deleted"))
}
