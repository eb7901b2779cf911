package client

import (
	"context"
	"sync"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/UnimationKorea/finance-church-personal/internal/types"
)

// Mode is what a submit of a form does.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// Form is the shared create and edit form of one record family.
//
// It is idle until Edit binds it to a record. A submit then updates that
// record and the form is idle again. Otherwise submits create records.
type Form[E any] struct {
	mu      sync.Mutex
	gate    *Gate
	editing bool
	target  uint64
	values  E

	blank  func() E
	keep   func(E) E
	create func(ctx context.Context, token string, values E) error
	update func(ctx context.Context, id uint64, values E) error
	remove func(ctx context.Context, id uint64) error
}

// Mode returns ModeUpdate while a record is being edited.
func (f *Form[E]) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.editing {
		return ModeUpdate
	}
	return ModeCreate
}

// Target returns the id of the record being edited.
func (f *Form[E]) Target() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target, f.editing
}

// Values returns the current field values.
func (f *Form[E]) Values() E {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Edit binds the form to the record and fills in its values.
// An edit that is already in progress is replaced.
func (f *Form[E]) Edit(id uint64, values E) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.editing = true
	f.target = id
	f.values = values
}

// Cancel ends editing and resets all fields. Nothing is sent.
func (f *Form[E]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.editing = false
	f.target = 0
	f.values = f.blank()
}

// Submit creates a record or, while editing, updates the edited one.
//
// On success the form is idle and keeps the fields that are useful for the
// next entry. On failure nothing changes, the user can correct the values.
func (f *Form[E]) Submit(ctx context.Context, values E) error {
	f.mu.Lock()
	editing, target := f.editing, f.target
	f.values = values
	f.mu.Unlock()

	var err error
	if editing {
		err = f.gate.Update(ctx, func(ctx context.Context) error {
			return f.update(ctx, target, values)
		})
	} else {
		err = f.gate.Create(ctx, func(ctx context.Context, token string) error {
			return f.create(ctx, token, values)
		})
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Another edit may have started in the meantime, it stays
	if f.editing && f.target == target {
		f.editing = false
		f.target = 0
	}
	f.values = f.keep(values)
	return nil
}

// Delete deletes the record. Deleting the record being edited also cancels the edit.
func (f *Form[E]) Delete(ctx context.Context, id uint64) error {
	if err := f.remove(ctx, id); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.editing && f.target == id {
		f.editing = false
		f.target = 0
		f.values = f.blank()
	}
	return nil
}

// TransactionForm returns the transaction form of the department.
func (c *Client) TransactionForm(department models.Department) *Form[models.TransactionEditable] {
	blank := func() models.TransactionEditable {
		return models.TransactionEditable{
			Date: types.Today().String(),
			Kind: models.KindIncome,
		}
	}

	return &Form[models.TransactionEditable]{
		gate:   NewGate(c.Seen),
		values: blank(),
		blank:  blank,
		keep: func(e models.TransactionEditable) models.TransactionEditable {
			return models.TransactionEditable{Date: e.Date, Kind: e.Kind, Category: e.Category}
		},
		create: func(ctx context.Context, token string, e models.TransactionEditable) error {
			_, _, err := c.CreateTransaction(ctx, department, e, token)
			return err
		},
		update: func(ctx context.Context, id uint64, e models.TransactionEditable) error {
			_, err := c.UpdateTransaction(ctx, department, id, e)
			return err
		},
		remove: func(ctx context.Context, id uint64) error {
			return c.DeleteTransaction(ctx, department, id)
		},
	}
}

// MinistryForm returns the ministry item form of the department.
func (c *Client) MinistryForm(department models.Department) *Form[models.MinistryItemEditable] {
	blank := func() models.MinistryItemEditable {
		return models.MinistryItemEditable{
			Date: types.Today().String(),
			Kind: models.KindMinistry,
		}
	}

	return &Form[models.MinistryItemEditable]{
		gate:   NewGate(c.Seen),
		values: blank(),
		blank:  blank,
		keep: func(e models.MinistryItemEditable) models.MinistryItemEditable {
			return models.MinistryItemEditable{Date: e.Date, Kind: e.Kind, Category: e.Category}
		},
		create: func(ctx context.Context, token string, e models.MinistryItemEditable) error {
			_, _, err := c.CreateMinistryItem(ctx, department, e, token)
			return err
		},
		update: func(ctx context.Context, id uint64, e models.MinistryItemEditable) error {
			_, err := c.UpdateMinistryItem(ctx, department, id, e)
			return err
		},
		remove: func(ctx context.Context, id uint64) error {
			return c.DeleteMinistryItem(ctx, department, id)
		},
	}
}
