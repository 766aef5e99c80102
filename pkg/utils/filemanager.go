// =============================================================================
// Sales Order Report - File Manager Utility
// =============================================================================
//
// This module provides the I/O collaborators around the core pipeline:
//   - Path resolution (relative -> absolute)
//   - Output directory creation
//   - Whole-file line reading with blank-line filtering
//   - Report/summary file writing
//   - Input archival (moving processed files)
//   - Error log generation
//
// None of this contains business logic: the core treats these as sinks and
// sources, so failures here surface as run-level errors, never as per-row
// outcomes.
//
// =============================================================================

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// PATHS AND DIRECTORIES
// =============================================================================

// ResolvePath turns a possibly-relative path into an absolute one using the
// process's current directory.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates a directory (and parents) if absent; it is a no-op when
// the directory already exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// LINE READING
// =============================================================================

// ReadNonBlankLines reads the whole file as text, splits it on line breaks,
// drops lines that are blank after trimming, and returns the remaining lines
// in file order. Windows line endings are tolerated: a trailing carriage
// return is stripped before the blank check.
func ReadNonBlankLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	raw := strings.Split(string(data), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteTextFile writes content to path verbatim.
func WriteTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteJSONFile serializes v with 2-space indentation and writes it to path.
func WriteJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveFile moves a processed input file into archiveDir, creating the
// directory if needed, and returns the archived path. A cross-device rename
// failure falls back to copy-then-delete.
func ArchiveFile(filePath, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	archivePath := filepath.Join(archiveDir, filepath.Base(filePath))
	if err := os.Rename(filePath, archivePath); err != nil {
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}
	return archivePath, nil
}

// copyFile copies src to dst, preserving nothing but content.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// WriteErrorLog writes a run failure message to error_<runID>.log in the
// output directory. When runID is empty a fresh UUID is used. Best-effort:
// the caller decides whether a write failure matters.
func WriteErrorLog(outputDir, runID, message string) (string, error) {
	if runID == "" {
		runID = uuid.New().String()
	}

	logPath := filepath.Join(outputDir, fmt.Sprintf("error_%s.log", runID))
	if err := os.WriteFile(logPath, []byte(message+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return logPath, nil
}
