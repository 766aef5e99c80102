// =============================================================================
// Sales Order Report - Run-Level Errors
// =============================================================================
//
// Only file-level and header-level problems abort a run; everything a data
// row can contain is handled inside row processing (rejections and
// defaulting) and never surfaces as an error. The sentinels here cover the
// file-level failures; the header failure is the typed MissingHeaderError in
// the ingest package.
//
// =============================================================================

package job

import "errors"

var (
	// ErrInputMissing indicates the resolved CSV path does not exist.
	ErrInputMissing = errors.New("input file does not exist")

	// ErrEmptyInput indicates the file holds fewer than 2 non-blank lines,
	// so there is no header/data pair to process.
	ErrEmptyInput = errors.New("input file has no data rows")
)
