package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"gorm.io/gorm"
)

// Database keeps the records in a SQL database through gorm.
type Database struct {
	db *gorm.DB
}

// NewDatabase returns a store on an already migrated database.
//
// It creates the id sequences of all departments that do not have them yet.
func NewDatabase(db *gorm.DB) (*Database, error) {
	for _, department := range models.Departments() {
		for _, family := range []models.Family{models.FamilyTransaction, models.FamilyMinistry} {
			err := db.Where(models.Sequence{Department: department, Family: family}).
				Attrs(models.Sequence{Last: 0}).
				FirstOrCreate(&models.Sequence{}).Error
			if err != nil {
				return nil, fmt.Errorf("could not create id sequence for %s %s: %w", department, family, err)
			}
		}
	}

	return &Database{db: db}, nil
}

// nextID increments the sequence of the family inside of the transaction tx.
//
// The update locks the sequence row until tx ends, so concurrent appends
// to the same department and family get distinct ids.
func nextID(tx *gorm.DB, department models.Department, family models.Family) (uint64, error) {
	res := tx.Model(&models.Sequence{}).
		Where("department = ? AND family = ?", department, family).
		Update("last", gorm.Expr("last + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		err := tx.Create(&models.Sequence{Department: department, Family: family, Last: 1}).Error
		return 1, err
	}

	var sequence models.Sequence
	err := tx.Where("department = ? AND family = ?", department, family).First(&sequence).Error
	if err != nil {
		return 0, err
	}

	return sequence.Last, nil
}

// AppendTransaction inserts the transaction with the next id of the department
// in one database transaction.
func (d *Database) AppendTransaction(ctx context.Context, department models.Department, data models.TransactionData) (models.Transaction, error) {
	if err := data.Validate(); err != nil {
		return models.Transaction{}, err
	}

	if err := canonicalize(&department); err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{Department: department, TransactionData: data}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, department, models.FamilyTransaction)
		if err != nil {
			return err
		}

		transaction.ID = id
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// ListTransactions returns the transactions of the department ordered by id.
func (d *Database) ListTransactions(ctx context.Context, department models.Department, kind models.TransactionKind) ([]models.Transaction, error) {
	if err := canonicalize(&department); err != nil {
		return nil, err
	}

	query := d.db.WithContext(ctx).Where("department = ?", department)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	transactions := make([]models.Transaction, 0)
	err := query.Order("id").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// UpdateTransaction replaces all fields of the transaction except its id.
func (d *Database) UpdateTransaction(ctx context.Context, department models.Department, id uint64, data models.TransactionData) (models.Transaction, error) {
	if err := data.Validate(); err != nil {
		return models.Transaction{}, err
	}

	if err := canonicalize(&department); err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("department = ? AND id = ?", department, id).First(&transaction).Error
		if err != nil {
			return err
		}

		transaction.TransactionData = data
		return tx.Model(&transaction).
			Select("date", "kind", "category", "description", "manager", "amount", "updated_at").
			Updates(&transaction).Error
	})
	if errors.Is(err, models.ErrNotFound) {
		return models.Transaction{}, notFound(models.FamilyTransaction, department, id)
	} else if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// RemoveTransaction deletes the transaction.
func (d *Database) RemoveTransaction(ctx context.Context, department models.Department, id uint64) error {
	if err := canonicalize(&department); err != nil {
		return err
	}

	res := d.db.WithContext(ctx).Where("department = ? AND id = ?", department, id).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return notFound(models.FamilyTransaction, department, id)
	}
	return nil
}

// AppendMinistryItem inserts the item with the next id of the department.
func (d *Database) AppendMinistryItem(ctx context.Context, department models.Department, data models.MinistryItemData) (models.MinistryItem, error) {
	if err := data.Validate(); err != nil {
		return models.MinistryItem{}, err
	}

	if err := canonicalize(&department); err != nil {
		return models.MinistryItem{}, err
	}

	item := models.MinistryItem{Department: department, MinistryItemData: data}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, department, models.FamilyMinistry)
		if err != nil {
			return err
		}

		item.ID = id
		return tx.Create(&item).Error
	})
	if err != nil {
		return models.MinistryItem{}, err
	}

	return item, nil
}

// ListMinistryItems returns the items of the department ordered by id.
func (d *Database) ListMinistryItems(ctx context.Context, department models.Department, kind models.MinistryKind) ([]models.MinistryItem, error) {
	if err := canonicalize(&department); err != nil {
		return nil, err
	}

	query := d.db.WithContext(ctx).Where("department = ?", department)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	items := make([]models.MinistryItem, 0)
	err := query.Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateMinistryItem replaces all fields of the item except its id.
func (d *Database) UpdateMinistryItem(ctx context.Context, department models.Department, id uint64, data models.MinistryItemData) (models.MinistryItem, error) {
	if err := data.Validate(); err != nil {
		return models.MinistryItem{}, err
	}

	if err := canonicalize(&department); err != nil {
		return models.MinistryItem{}, err
	}

	var item models.MinistryItem
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("department = ? AND id = ?", department, id).First(&item).Error
		if err != nil {
			return err
		}

		item.MinistryItemData = data
		return tx.Model(&item).
			Select("date", "kind", "category", "content", "updated_at").
			Updates(&item).Error
	})
	if errors.Is(err, models.ErrNotFound) {
		return models.MinistryItem{}, notFound(models.FamilyMinistry, department, id)
	} else if err != nil {
		return models.MinistryItem{}, err
	}

	return item, nil
}

// RemoveMinistryItem deletes the item.
func (d *Database) RemoveMinistryItem(ctx context.Context, department models.Department, id uint64) error {
	if err := canonicalize(&department); err != nil {
		return err
	}

	res := d.db.WithContext(ctx).Where("department = ? AND id = ?", department, id).Delete(&models.MinistryItem{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return notFound(models.FamilyMinistry, department, id)
	}
	return nil
}

// Ping checks the database connection.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
