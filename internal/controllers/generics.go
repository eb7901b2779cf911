package controllers

import (
	"fmt"
	"net/http"

	"github.com/UnimationKorea/finance-church-personal/internal/idempotency"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
)

// submit runs create at most once per idempotency key of the request.
//
// Keys are scoped by department and scope. When the key was used before,
// the outcome of the first request is returned and duplicate is true.
// Requests without a key always create.
func submit[R any](co Controller, c *gin.Context, department models.Department, scope string, create func() (R, error)) (record R, duplicate bool, err error) {
	token := c.GetHeader(IdempotencyHeader)
	if token == "" || co.Submissions == nil {
		record, err = create()
		return record, false, err
	}

	key := idempotency.Key(department.String(), scope, token)
	entry, fresh := co.Submissions.Claim(key)
	if !fresh {
		if !entry.Done {
			return record, true, fmt.Errorf("%w, please wait", models.ErrDuplicateSubmission)
		}

		if entry.Err != nil {
			return record, true, entry.Err
		}

		return entry.Value.(R), true, nil
	}

	record, err = create()
	co.Submissions.Complete(key, record, err)
	return record, false, err
}

// created returns the status for a successful create.
func created(duplicate bool) int {
	if duplicate {
		return http.StatusOK
	}
	return http.StatusCreated
}
