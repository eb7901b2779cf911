package client

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/UnimationKorea/finance-church-personal/internal/importer"
	"github.com/UnimationKorea/finance-church-personal/internal/ledgercsv"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

// ImportCSV reads a CSV export and creates one record for every line.
//
// Every line goes through its own gated create, so a line is never created
// twice. Lines that fail are counted and the import goes on.
func (c *Client) ImportCSV(ctx context.Context, department models.Department, family models.Family, r io.Reader) (importer.Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return importer.Result{}, err
	}

	gate := NewGate(c.Seen)

	var result importer.Result
	switch family {
	case models.FamilyTransaction:
		lines, err := ledgercsv.ReadTransactions(bytes.NewReader(content))
		if err != nil {
			return importer.Result{}, err
		}

		result = importer.Import(ctx, lines, func(ctx context.Context, e models.TransactionEditable) error {
			return gate.Create(ctx, func(ctx context.Context, token string) error {
				_, _, err := c.CreateTransaction(ctx, department, e, token)
				return err
			})
		})

	case models.FamilyMinistry:
		lines, err := ledgercsv.ReadMinistryItems(bytes.NewReader(content))
		if err != nil {
			return importer.Result{}, err
		}

		result = importer.Import(ctx, lines, func(ctx context.Context, e models.MinistryItemEditable) error {
			return gate.Create(ctx, func(ctx context.Context, token string) error {
				_, _, err := c.CreateMinistryItem(ctx, department, e, token)
				return err
			})
		})

	default:
		return importer.Result{}, fmt.Errorf("%w: unknown record family '%s'", models.ErrValidation, family)
	}

	result.ImportID = importer.ID(content)
	return result, nil
}
