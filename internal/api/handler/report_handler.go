package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-staff-reports/internal/model"
	"go-staff-reports/internal/report"
	"go-staff-reports/internal/store"
	"go-staff-reports/pkg/utils"

	"github.com/google/uuid"
)

var outputs = utils.NewOutputManager("outputs")

// CreateReport creates a new report run
// @Summary Create a new report run
// @Description Submit a report run with the provided options and start it asynchronously
// @Tags reports
// @Accept json
// @Produce json
// @Param report body model.ReportOptions true "Report options"
// @Success 200 {object} map[string]interface{} "Report run created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports [post]
func CreateReport(w http.ResponseWriter, r *http.Request) {
	var opts model.ReportOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// 1. Validate payload
	if opts.InputFile == "" {
		http.Error(w, "An input file is required", http.StatusBadRequest)
		return
	}
	if !opts.Mode.Valid() {
		http.Error(w, "Mode must be hierarchy, summary or save", http.StatusBadRequest)
		return
	}
	if opts.Separator == "" {
		opts.Separator = ";"
	}
	if opts.OutputFile == "" {
		opts.OutputFile = "result.csv"
	}

	// 2. Generate run ID
	runID := uuid.New().String()

	// 3. Save run to DB
	if err := store.SaveRun(runID, opts); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	// 4. Run the report asynchronously
	go runReport(runID, opts)

	// 5. Return response
	resp := map[string]interface{}{
		"message":   "Report run created successfully!",
		"runID":     runID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// runReport executes one engine pass for an API-submitted run and
// persists everything it produces.
func runReport(runID string, opts model.ReportOptions) {
	fmt.Printf("🚀 Starting report run %s (%s mode)\n", runID, opts.Mode)
	store.UpdateRunStatus(runID, "running")

	// Saved files land in the run's own output directory.
	if opts.Mode == model.ModeSave {
		path, err := outputs.OutputPath(runID, opts.OutputFile)
		if err != nil {
			failRun(runID, err)
			return
		}
		opts.OutputFile = path
	}

	var rendered bytes.Buffer
	result, err := report.Run(opts, &rendered)
	if err != nil {
		failRun(runID, err)
		return
	}

	// Text-mode output is kept as a downloadable file too.
	if opts.Mode != model.ModeSave {
		path, err := outputs.OutputPath(runID, "report.txt")
		if err != nil {
			failRun(runID, err)
			return
		}
		if err := os.WriteFile(path, rendered.Bytes(), 0644); err != nil {
			failRun(runID, fmt.Errorf("failed to write rendered report: %w", err))
			return
		}
	}

	if len(result.Summaries) > 0 {
		if err := store.SaveSummaries(runID, result.Summaries); err != nil {
			failRun(runID, err)
			return
		}
	}

	store.UpdateRunStatus(runID, "completed")
	fmt.Printf("✅ Report run %s completed: %d departments\n", runID, result.Departments)
}

func failRun(runID string, err error) {
	fmt.Printf("❌ Report run %s failed: %v\n", runID, err)
	store.UpdateRunStatus(runID, "failed")
	store.SaveRunError(runID, err)
}

// ListReports retrieves all report runs
// @Summary List all report runs
// @Description Get a list of all report runs with their current status
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {array} map[string]interface{} "List of report runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports [get]
func ListReports(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch report runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetReport retrieves a specific report run
// @Summary Get report run
// @Description Retrieve details of a specific report run
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Report run details"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Report run not found"
// @Router /reports/{id} [get]
func GetReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Report run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetReportResults retrieves the department summaries of a report run
// @Summary Get report run results
// @Description Retrieve the department summaries computed by a report run
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Report run results"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/{id}/results [get]
func GetReportResults(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/results")
	if !ok {
		return
	}

	summaries, err := store.GetSummaries(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve results", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id":  runID,
		"results": summaries,
		"count":   len(summaries),
	})
}

// GetReportErrors retrieves errors for a report run
// @Summary Get report run errors
// @Description Retrieve all errors recorded for a report run
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Report run errors"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/{id}/errors [get]
func GetReportErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	runErrors, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"errors": runErrors,
		"count":  len(runErrors),
	})
}

// DownloadReport downloads an output file of a report run
// @Summary Download report output
// @Description Download an output file produced by a report run
// @Tags reports
// @Produce text/csv
// @Param id path string true "Run ID"
// @Param file query string false "Output file name (defaults to report.txt)"
// @Success 200 {file} file "Output file"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /reports/{id}/download [get]
func DownloadReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/download")
	if !ok {
		return
	}

	fileName := r.URL.Query().Get("file")
	if fileName == "" {
		fileName = "report.txt"
	}
	filePath := filepath.Join(outputs.RunDir(runID), filepath.Base(fileName))

	if _, err := os.Stat(filePath); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filePath)
}

// runIDFromPath extracts the run ID between the reports prefix and the
// given suffix, writing a 400 when the path does not fit.
func runIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/reports/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
