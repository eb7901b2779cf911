// Package store keeps the transactions and ministry items of every department.
//
// Each department owns one ordered list per record family. Ids are assigned
// by the store, increase monotonically per department and family and are
// never reused, not even after the record with the highest id was removed.
package store

import (
	"context"
	"fmt"

	"github.com/UnimationKorea/finance-church-personal/internal/config"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

// Store is the record store of the ledger.
//
// Lists are returned in insertion order. Failed mutations leave the store unchanged.
type Store interface {
	AppendTransaction(ctx context.Context, department models.Department, data models.TransactionData) (models.Transaction, error)
	ListTransactions(ctx context.Context, department models.Department, kind models.TransactionKind) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, department models.Department, id uint64, data models.TransactionData) (models.Transaction, error)
	RemoveTransaction(ctx context.Context, department models.Department, id uint64) error

	AppendMinistryItem(ctx context.Context, department models.Department, data models.MinistryItemData) (models.MinistryItem, error)
	ListMinistryItems(ctx context.Context, department models.Department, kind models.MinistryKind) ([]models.MinistryItem, error)
	UpdateMinistryItem(ctx context.Context, department models.Department, id uint64, data models.MinistryItemData) (models.MinistryItem, error)
	RemoveMinistryItem(ctx context.Context, department models.Department, id uint64) error

	// Ping reports whether the store can serve requests
	Ping(ctx context.Context) error
	Close() error
}

// Open creates the store that is configured.
func Open(cfg config.Storage) (Store, error) {
	switch cfg.Kind {
	case config.StorageMemory, "":
		return NewMemory(), nil
	case config.StorageDatabase:
		db, err := models.Connect(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return NewDatabase(db)
	default:
		return nil, fmt.Errorf("unknown storage '%s'", cfg.Kind)
	}
}

func notFound(family models.Family, department models.Department, id uint64) error {
	name := "transaction"
	if family == models.FamilyMinistry {
		name = "ministry item"
	}

	return fmt.Errorf("%w %s with id %d in %s", models.ErrNotFound, name, id, department)
}

// canonicalize replaces the department with its canonical name.
// Names that differ only in case or surrounding space are the same department.
func canonicalize(department *models.Department) error {
	d, err := models.ParseDepartment(string(*department))
	if err != nil {
		return err
	}

	*department = d
	return nil
}
