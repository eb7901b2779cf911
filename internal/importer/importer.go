// Package importer creates records from the lines of an imported file.
//
// Every line is created on its own. A failing line is counted and reported,
// it never stops the import.
package importer

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/UnimationKorea/finance-church-personal/internal/ledgercsv"
)

// Result summarizes an import.
type Result struct {
	ImportID string      `json:"importId" example:"dbac4a4ba50e42b6e04b43c2c9b3619e3668dc0a8caf050b584bdafaebee1787"` // Checksum of the imported file
	Imported int         `json:"imported" example:"12"`                                                               // Number of records created
	Failed   int         `json:"failed" example:"1"`                                                                  // Number of lines that could not be imported
	Errors   []LineError `json:"errors"`                                                                              // One entry for every failed line
}

// LineError describes why a line was not imported.
type LineError struct {
	Line  int    `json:"line" example:"4"`
	Error string `json:"error" example:"description is required"`
}

// ID returns the import id for the content of a file.
func ID(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// Import calls create for every line that was parsed without error.
//
// Once ctx is done, all remaining lines are counted as failed.
func Import[E any](ctx context.Context, lines []ledgercsv.Line[E], create func(context.Context, E) error) Result {
	result := Result{Errors: make([]LineError, 0)}

	for _, line := range lines {
		err := line.Err
		if err == nil {
			err = ctx.Err()
		}

		if err == nil {
			err = create(ctx, line.Editable)
		}

		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, LineError{Line: line.Number, Error: err.Error()})
			continue
		}

		result.Imported++
	}

	return result
}
