package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
)

// Memory keeps all records in memory. Its contents are lost on restart.
//
// Every department has its own lock, so departments never wait for each other.
type Memory struct {
	ledgers map[models.Department]*ledger
	now     func() time.Time
}

type ledger struct {
	mu           sync.Mutex
	transactions family[models.Transaction]
	ministry     family[models.MinistryItem]
}

// family is the ordered record list of one record family and its id counter.
type family[T any] struct {
	records []T
	last    uint64
	model   func(*T) *models.Model
}

// NewMemory returns an empty in-memory store for all departments.
func NewMemory() *Memory {
	m := &Memory{
		ledgers: make(map[models.Department]*ledger),
		now: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	for _, d := range models.Departments() {
		m.ledgers[d] = &ledger{
			transactions: family[models.Transaction]{model: func(t *models.Transaction) *models.Model { return &t.Model }},
			ministry:     family[models.MinistryItem]{model: func(i *models.MinistryItem) *models.Model { return &i.Model }},
		}
	}

	return m
}

func (f *family[T]) append(record T, now time.Time) T {
	f.last++
	m := f.model(&record)
	m.ID = f.last
	m.CreatedAt = now
	m.UpdatedAt = now

	f.records = append(f.records, record)
	return record
}

func (f *family[T]) index(id uint64) int {
	for i := range f.records {
		if f.model(&f.records[i]).ID == id {
			return i
		}
	}
	return -1
}

// update applies set to the record with the id. It reports false if there is none.
func (f *family[T]) update(id uint64, now time.Time, set func(*T)) (T, bool) {
	i := f.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}

	set(&f.records[i])
	f.model(&f.records[i]).UpdatedAt = now
	return f.records[i], true
}

func (f *family[T]) remove(id uint64) bool {
	i := f.index(id)
	if i < 0 {
		return false
	}

	f.records = append(f.records[:i:i], f.records[i+1:]...)
	return true
}

func (f *family[T]) list(keep func(T) bool) []T {
	records := make([]T, 0, len(f.records))
	for _, r := range f.records {
		if keep(r) {
			records = append(records, r)
		}
	}
	return records
}

// ledger returns the locked ledger of the department and replaces the
// department with its canonical name. The caller must unlock the ledger.
func (m *Memory) ledger(ctx context.Context, department *models.Department) (*ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := canonicalize(department); err != nil {
		return nil, err
	}

	l, ok := m.ledgers[*department]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", models.ErrUnknownDepartment, *department)
	}

	l.mu.Lock()
	return l, nil
}

// AppendTransaction stores the transaction with the next id of the department.
func (m *Memory) AppendTransaction(ctx context.Context, department models.Department, data models.TransactionData) (models.Transaction, error) {
	if err := data.Validate(); err != nil {
		return models.Transaction{}, err
	}

	l, err := m.ledger(ctx, &department)
	if err != nil {
		return models.Transaction{}, err
	}
	defer l.mu.Unlock()

	return l.transactions.append(models.Transaction{Department: department, TransactionData: data}, m.now()), nil
}

// ListTransactions returns the transactions of the department in insertion order.
// An empty kind returns all of them.
func (m *Memory) ListTransactions(ctx context.Context, department models.Department, kind models.TransactionKind) ([]models.Transaction, error) {
	l, err := m.ledger(ctx, &department)
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()

	return l.transactions.list(func(t models.Transaction) bool {
		return kind == "" || t.Kind == kind
	}), nil
}

// UpdateTransaction replaces all fields of the transaction except its id.
func (m *Memory) UpdateTransaction(ctx context.Context, department models.Department, id uint64, data models.TransactionData) (models.Transaction, error) {
	if err := data.Validate(); err != nil {
		return models.Transaction{}, err
	}

	l, err := m.ledger(ctx, &department)
	if err != nil {
		return models.Transaction{}, err
	}
	defer l.mu.Unlock()

	t, ok := l.transactions.update(id, m.now(), func(t *models.Transaction) {
		t.TransactionData = data
	})
	if !ok {
		return models.Transaction{}, notFound(models.FamilyTransaction, department, id)
	}

	return t, nil
}

// RemoveTransaction deletes the transaction. Its id is not used again.
func (m *Memory) RemoveTransaction(ctx context.Context, department models.Department, id uint64) error {
	l, err := m.ledger(ctx, &department)
	if err != nil {
		return err
	}
	defer l.mu.Unlock()

	if !l.transactions.remove(id) {
		return notFound(models.FamilyTransaction, department, id)
	}
	return nil
}

// AppendMinistryItem stores the item with the next id of the department.
func (m *Memory) AppendMinistryItem(ctx context.Context, department models.Department, data models.MinistryItemData) (models.MinistryItem, error) {
	if err := data.Validate(); err != nil {
		return models.MinistryItem{}, err
	}

	l, err := m.ledger(ctx, &department)
	if err != nil {
		return models.MinistryItem{}, err
	}
	defer l.mu.Unlock()

	return l.ministry.append(models.MinistryItem{Department: department, MinistryItemData: data}, m.now()), nil
}

// ListMinistryItems returns the items of the department in insertion order.
// An empty kind returns all of them.
func (m *Memory) ListMinistryItems(ctx context.Context, department models.Department, kind models.MinistryKind) ([]models.MinistryItem, error) {
	l, err := m.ledger(ctx, &department)
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()

	return l.ministry.list(func(i models.MinistryItem) bool {
		return kind == "" || i.Kind == kind
	}), nil
}

// UpdateMinistryItem replaces all fields of the item except its id.
func (m *Memory) UpdateMinistryItem(ctx context.Context, department models.Department, id uint64, data models.MinistryItemData) (models.MinistryItem, error) {
	if err := data.Validate(); err != nil {
		return models.MinistryItem{}, err
	}

	l, err := m.ledger(ctx, &department)
	if err != nil {
		return models.MinistryItem{}, err
	}
	defer l.mu.Unlock()

	item, ok := l.ministry.update(id, m.now(), func(i *models.MinistryItem) {
		i.MinistryItemData = data
	})
	if !ok {
		return models.MinistryItem{}, notFound(models.FamilyMinistry, department, id)
	}

	return item, nil
}

// RemoveMinistryItem deletes the item. Its id is not used again.
func (m *Memory) RemoveMinistryItem(ctx context.Context, department models.Department, id uint64) error {
	l, err := m.ledger(ctx, &department)
	if err != nil {
		return err
	}
	defer l.mu.Unlock()

	if !l.ministry.remove(id) {
		return notFound(models.FamilyMinistry, department, id)
	}
	return nil
}

// Ping always succeeds for the memory store.
func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
