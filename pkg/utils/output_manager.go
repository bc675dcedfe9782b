package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager organizes the output files of API-submitted report runs:
// every run gets its own directory under the base output dir.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// RunDir returns the output directory of a run.
func (om *OutputManager) RunDir(runID string) string {
	return filepath.Join(om.BaseOutputDir, runID)
}

// OutputPath creates the run's output directory if needed and returns
// the full path for an output file inside it. The filename is stripped
// of any path components.
func (om *OutputManager) OutputPath(runID, fileName string) (string, error) {
	runDir := om.RunDir(runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return filepath.Join(runDir, filepath.Base(fileName)), nil
}

// DownloadURL returns the API download URL for a run's output file.
func (om *OutputManager) DownloadURL(runID, fileName string) string {
	return fmt.Sprintf("/api/v1/reports/%s/download?file=%s", runID, filepath.Base(fileName))
}

// FileSize returns the size of a file in bytes.
func (om *OutputManager) FileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
