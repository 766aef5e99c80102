// =============================================================================
// Sales Order Report - Job Orchestrator
// =============================================================================
//
// This module runs one report job end to end: read the input, index the
// header, fold every data row through the parser / discount rules /
// aggregator, then format and write the outputs.
//
// PROCESSING STEPS:
//   1. Resolve the input path and check it exists
//   2. Read the non-blank lines; require a header plus at least one data row
//   3. Build the header index
//   4. Fold each data line: parse -> discount -> aggregate (strict left-fold,
//      file order, single-threaded)
//   5. Format the report and summary from the finalized aggregates
//   6. Ensure the output directory and write report.txt / summary.json
//      (plus the optional XLSX export)
//   7. Archive the input file if archival is configured
//
// Row-level problems never abort the run; any error returned from Run is a
// run-level failure and means the outputs may be absent or partial.
//
// =============================================================================

package job

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/sales-order-report/internal/aggregate"
	"github.com/ginjaninja78/sales-order-report/internal/config"
	"github.com/ginjaninja78/sales-order-report/internal/ingest"
	"github.com/ginjaninja78/sales-order-report/internal/logger"
	"github.com/ginjaninja78/sales-order-report/internal/report"
	"github.com/ginjaninja78/sales-order-report/internal/rules"
	"github.com/ginjaninja78/sales-order-report/internal/types"
	"github.com/ginjaninja78/sales-order-report/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result describes a completed run.
type Result struct {
	// RunID is the unique id attached to this run's log entries.
	RunID string

	// Summary is the structured summary that was written to summary.json.
	Summary report.Summary

	// ReportPath and SummaryPath are the written output files.
	ReportPath  string
	SummaryPath string

	// XLSXPath is the written workbook path, empty when the export is
	// disabled.
	XLSXPath string

	// ArchivedPath is where the input file was moved, empty when archival is
	// disabled.
	ArchivedPath string

	// Warnings is the number of warnings recorded during the run.
	Warnings int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// =============================================================================
// JOB STRUCTURE
// =============================================================================

// Job processes one input CSV into one output directory.
type Job struct {
	csvPath   string
	outputDir string
	cfg       *config.Config
	log       *logger.Logger
	runID     string
}

// New creates a Job.
//
// PARAMETERS:
//   - csvPath: Path to the input CSV (may be relative).
//   - outputDir: Directory the outputs are written to (created if absent).
//   - cfg: Application configuration; nil means defaults.
//   - log: Structured logger; nil means a no-op logger.
func New(csvPath, outputDir string, cfg *config.Config, log *logger.Logger) *Job {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	runID := uuid.New().String()
	return &Job{
		csvPath:   csvPath,
		outputDir: outputDir,
		cfg:       cfg,
		log:       log.With("run_id", runID),
		runID:     runID,
	}
}

// RunID returns the run's unique id.
func (j *Job) RunID() string {
	return j.runID
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the job and returns its result.
func (j *Job) Run() (*Result, error) {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: RESOLVE AND CHECK THE INPUT
	// =========================================================================

	csvPath, err := utils.ResolvePath(j.csvPath)
	if err != nil {
		return nil, err
	}
	if !utils.FileExists(csvPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputMissing, csvPath)
	}

	outputDir, err := utils.ResolvePath(j.outputDir)
	if err != nil {
		return nil, err
	}

	j.log.Info("starting run", "input", csvPath, "output_dir", outputDir)

	// =========================================================================
	// STEP 2: READ THE INPUT LINES
	// =========================================================================
	// Blank lines anywhere in the file are dropped; line numbers used in
	// warnings are positions within the remaining sequence, header included.

	lines, err := utils.ReadNonBlankLines(csvPath)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, csvPath)
	}

	// =========================================================================
	// STEP 3: INDEX THE HEADER
	// =========================================================================

	header, err := ingest.BuildHeaderIndex(lines[0])
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 4: FOLD THE DATA ROWS
	// =========================================================================
	// One pass, file order, no reordering. The aggregates object is the
	// parser's warning/bad-row sink and the fold's accumulator.

	agg := aggregate.New()
	processed := 0

	for i, line := range lines[1:] {
		lineNumber := i + 2 // header is line 1

		row, accepted := ingest.ParseRow(line, header, lineNumber, agg)
		if accepted {
			rate := rules.Discount(row)
			amounts := types.ComputeLineAmounts(row, rate)
			agg.Apply(row, amounts)
		}

		processed++
		if j.cfg.ProgressInterval > 0 && processed%j.cfg.ProgressInterval == 0 {
			j.log.Debug("progress", "rows_processed", processed)
		}
	}

	j.log.Info("fold complete",
		"data_rows", processed,
		"accepted", agg.TotalOrders,
		"bad_rows", agg.BadRows,
		"warnings", len(agg.Warnings),
	)

	// =========================================================================
	// STEP 5: FORMAT THE OUTPUTS
	// =========================================================================

	reportText := report.Render(agg)
	summary := report.BuildSummary(agg)

	// =========================================================================
	// STEP 6: WRITE THE OUTPUTS
	// =========================================================================

	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	reportPath := filepath.Join(outputDir, j.cfg.ReportFile)
	if err := utils.WriteTextFile(reportPath, reportText); err != nil {
		return nil, err
	}

	summaryPath := filepath.Join(outputDir, j.cfg.SummaryFile)
	if err := utils.WriteJSONFile(summaryPath, summary); err != nil {
		return nil, err
	}

	xlsxPath := ""
	if j.cfg.XLSXFile != "" {
		xlsxPath = filepath.Join(outputDir, j.cfg.XLSXFile)
		if err := report.WriteXLSX(xlsxPath, agg); err != nil {
			return nil, err
		}
	}

	// =========================================================================
	// STEP 7: ARCHIVE THE INPUT
	// =========================================================================
	// Only after every output landed; a failed run leaves the input in place.

	archivedPath := ""
	if j.cfg.ArchiveDir != "" {
		archivedPath, err = utils.ArchiveFile(csvPath, j.cfg.ArchiveDir)
		if err != nil {
			return nil, err
		}
		j.log.Info("archived input", "archived_path", archivedPath)
	}

	elapsed := time.Since(startTime)
	j.log.Info("run complete", "elapsed", elapsed.String())

	return &Result{
		RunID:        j.runID,
		Summary:      summary,
		ReportPath:   reportPath,
		SummaryPath:  summaryPath,
		XLSXPath:     xlsxPath,
		ArchivedPath: archivedPath,
		Warnings:     len(agg.Warnings),
		Elapsed:      elapsed,
	}, nil
}
