// Package ledgercsv reads and writes transactions and ministry items as CSV.
//
// Files are UTF-8 with a byte order mark so that spreadsheet applications
// detect the encoding. The first row is a header and is skipped on reading.
package ledgercsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	TransactionHeader = []string{"date", "kind", "category", "description", "manager", "amount"}
	MinistryHeader    = []string{"date", "kind", "category", "content"}
)

var (
	ErrMissingField = errors.New("a required field is empty")
	ErrFieldCount   = errors.New("the line does not have enough fields")
	ErrAmount       = errors.New("the amount is not a number")
)

// Column indices of transaction files
const (
	Date = iota
	Kind
	Category
	Description
	Manager
	Amount
)

// Column index of the content of ministry files
const Content = 3

// notAmount matches everything that is stripped from amounts, e.g. thousands separators and currency signs.
var notAmount = regexp.MustCompile(`[^0-9.\-]`)

// kindAliases maps the names used in older exports to kinds.
var kindAliases = map[string]string{
	"수입":     string(models.KindIncome),
	"지출":     string(models.KindExpense),
	"사역":     string(models.KindMinistry),
	"기도제목":   string(models.KindPrayerRequest),
	"prayer": string(models.KindPrayerRequest),
}

// Line is the result of reading one line of a file.
//
// Err is set if the line could not be parsed, Editable is only valid if it is not.
type Line[E any] struct {
	Number   int
	Editable E
	Err      error
}

type (
	TransactionLine = Line[models.TransactionEditable]
	MinistryLine    = Line[models.MinistryItemEditable]
)

// WriteTransactions writes the transactions with a header row.
func WriteTransactions(w io.Writer, transactions []models.Transaction) error {
	return write(w, TransactionHeader, len(transactions), func(i int) []string {
		t := transactions[i]
		return []string{t.Date.String(), string(t.Kind), t.Category, t.Description, t.Manager, t.Amount.String()}
	})
}

// WriteMinistryItems writes the ministry items with a header row.
func WriteMinistryItems(w io.Writer, items []models.MinistryItem) error {
	return write(w, MinistryHeader, len(items), func(i int) []string {
		m := items[i]
		return []string{m.Date.String(), string(m.Kind), m.Category, m.Content}
	})
}

func write(w io.Writer, header []string, n int, row func(int) []string) error {
	bom := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(bom)

	if err := writer.Write(header); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return bom.Close()
}

// ReadTransactions reads a transaction file.
//
// Malformed lines are returned with an error and do not stop reading.
// The returned error is only set if the input cannot be read at all.
func ReadTransactions(r io.Reader) ([]TransactionLine, error) {
	var lines []TransactionLine

	err := read(r, func(number int, record []string, err error) {
		line := TransactionLine{Number: number}
		defer func() { lines = append(lines, line) }()

		if err != nil {
			line.Err = err
			return
		}

		if len(record) < len(TransactionHeader) {
			line.Err = fmt.Errorf("%w, expected %d but got %d", ErrFieldCount, len(TransactionHeader), len(record))
			return
		}

		for _, i := range []int{Date, Kind, Category, Description, Amount} {
			if record[i] == "" {
				line.Err = fmt.Errorf("%w: %s", ErrMissingField, TransactionHeader[i])
				return
			}
		}

		amount, err := decimal.NewFromString(notAmount.ReplaceAllString(record[Amount], ""))
		if err != nil {
			line.Err = fmt.Errorf("%w: '%s'", ErrAmount, record[Amount])
			return
		}

		line.Editable = models.TransactionEditable{
			Date:        record[Date],
			Kind:        models.TransactionKind(kind(record[Kind])),
			Category:    record[Category],
			Description: record[Description],
			Manager:     record[Manager],
			Amount:      &amount,
		}
	})

	return lines, err
}

// ReadMinistryItems reads a ministry file.
func ReadMinistryItems(r io.Reader) ([]MinistryLine, error) {
	var lines []MinistryLine

	err := read(r, func(number int, record []string, err error) {
		line := MinistryLine{Number: number}
		defer func() { lines = append(lines, line) }()

		if err != nil {
			line.Err = err
			return
		}

		if len(record) < len(MinistryHeader) {
			line.Err = fmt.Errorf("%w, expected %d but got %d", ErrFieldCount, len(MinistryHeader), len(record))
			return
		}

		for i := range MinistryHeader {
			if record[i] == "" {
				line.Err = fmt.Errorf("%w: %s", ErrMissingField, MinistryHeader[i])
				return
			}
		}

		line.Editable = models.MinistryItemEditable{
			Date:     record[Date],
			Kind:     models.MinistryKind(kind(record[Kind])),
			Category: record[Category],
			Content:  record[Content],
		}
	})

	return lines, err
}

// read calls fn for every line after the header. Blank lines are skipped.
func read(r io.Reader, fn func(number int, record []string, err error)) error {
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	// Skip the header
	_, err := reader.Read()
	if err == io.EOF {
		return nil
	}

	var parseErr *csv.ParseError
	if err != nil && !errors.As(err, &parseErr) {
		return fmt.Errorf("could not read CSV: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}

		if errors.As(err, &parseErr) {
			fn(parseErr.Line, nil, fmt.Errorf("could not read line: %w", parseErr.Err))
			continue
		} else if err != nil {
			return fmt.Errorf("could not read CSV: %w", err)
		}

		// always use the first field, we are only interested in the line
		number, _ := reader.FieldPos(0)

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		fn(number, record, nil)
	}
}

// kind resolves aliases and the capitalization of kinds.
func kind(s string) string {
	if k, ok := kindAliases[strings.ToLower(s)]; ok {
		return k
	}

	for _, k := range models.TransactionKinds() {
		if strings.EqualFold(string(k), s) {
			return string(k)
		}
	}

	for _, k := range models.MinistryKinds() {
		if strings.EqualFold(string(k), s) {
			return string(k)
		}
	}

	return s
}
