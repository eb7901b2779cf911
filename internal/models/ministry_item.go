package models

import (
	"strings"
	"unicode/utf8"

	"github.com/UnimationKorea/finance-church-personal/internal/types"
)

// MaxContentLength is the maximum number of characters in a ministry item.
const MaxContentLength = 1000

// MinistryItem is a ministry activity or a prayer request of a department.
type MinistryItem struct {
	Department Department `json:"department" gorm:"primaryKey;size:64" example:"Infant Ministry"`
	Model
	MinistryItemData
}

// MinistryItemData contains the mutable fields of a ministry item.
type MinistryItemData struct {
	Date     types.Date   `json:"date" gorm:"not null" swaggertype:"string" format:"date" example:"2024-03-31"`
	Kind     MinistryKind `json:"kind" gorm:"size:16;not null" example:"Ministry"`
	Category string       `json:"category" gorm:"size:32;not null" example:"AnnualEvent"`
	Content  string       `json:"content" gorm:"size:4000;not null" example:"Easter egg hunt"`
}

// MinistryItemEditable is the payload for creating and updating ministry items.
type MinistryItemEditable struct {
	Date     string       `json:"date" example:"2024-03-31"`
	Kind     MinistryKind `json:"kind" example:"Ministry"`
	Category string       `json:"category" example:"AnnualEvent"`
	Content  string       `json:"content" example:"Easter egg hunt"`
}

// Validate checks the editable and returns the normalized ministry item data.
func (e MinistryItemEditable) Validate() (MinistryItemData, error) {
	if strings.TrimSpace(e.Date) == "" {
		return MinistryItemData{}, invalid("date", "date is required")
	}

	date, err := types.ParseDate(e.Date)
	if err != nil {
		return MinistryItemData{}, invalid("date", "date %q is not a valid date, use YYYY-MM-DD", strings.TrimSpace(e.Date))
	}

	kind := MinistryKind(strings.TrimSpace(string(e.Kind)))
	if kind == "" {
		return MinistryItemData{}, invalid("kind", "kind is required")
	}

	if !kind.Valid() {
		return MinistryItemData{}, invalid("kind", "kind %q is not valid, must be one of Ministry, PrayerRequest", kind)
	}

	category := strings.TrimSpace(e.Category)
	if category == "" {
		return MinistryItemData{}, invalid("category", "category is required")
	}

	if !ValidMinistryCategory(kind, category) {
		return MinistryItemData{}, invalid("category", "category %q is not valid for kind %s", category, kind)
	}

	content := strings.TrimSpace(e.Content)
	if content == "" {
		return MinistryItemData{}, invalid("content", "content is required")
	}

	if utf8.RuneCountInString(content) > MaxContentLength {
		return MinistryItemData{}, invalid("content", "content must not be longer than %d characters", MaxContentLength)
	}

	return MinistryItemData{
		Date:     date,
		Kind:     kind,
		Category: category,
		Content:  content,
	}, nil
}

// Validate checks ministry item data that was not created from an editable.
func (d MinistryItemData) Validate() error {
	if d.Date.IsZero() {
		return invalid("date", "date is required")
	}

	_, err := d.Editable().Validate()
	return err
}

// Editable returns the ministry item data as an editable.
func (d MinistryItemData) Editable() MinistryItemEditable {
	return MinistryItemEditable{
		Date:     d.Date.String(),
		Kind:     d.Kind,
		Category: d.Category,
		Content:  d.Content,
	}
}

// FilterMinistryItems returns the items of the given kind, keeping their order.
// An empty kind returns all items.
func FilterMinistryItems(items []MinistryItem, kind MinistryKind) []MinistryItem {
	filtered := make([]MinistryItem, 0, len(items))
	for _, m := range items {
		if kind == "" || m.Kind == kind {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

// PartitionMinistryItems splits items into ministry activities and prayer requests.
// Both groups keep the order of items.
func PartitionMinistryItems(items []MinistryItem) (ministry, prayer []MinistryItem) {
	ministry = make([]MinistryItem, 0, len(items))
	prayer = make([]MinistryItem, 0)

	for _, m := range items {
		if m.Kind == KindPrayerRequest {
			prayer = append(prayer, m)
			continue
		}
		ministry = append(ministry, m)
	}

	return ministry, prayer
}
