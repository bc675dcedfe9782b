package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-staff-reports/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the run-history database and creates its tables.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		options TEXT,
		mode TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	summaryTable := `
	CREATE TABLE IF NOT EXISTS run_summaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		position INTEGER,
		department TEXT,
		headcount INTEGER,
		min_salary INTEGER,
		max_salary INTEGER,
		average_salary REAL
	);
	`

	for _, table := range []string{runTable, errorTable, summaryTable} {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a new report run in pending state.
func SaveRun(runID string, opts model.ReportOptions) error {
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, options, mode, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, optsJSON, string(opts.Mode), "pending", now, now)
	return err
}

// UpdateRunStatus updates a run's status.
func UpdateRunStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunError records an error for a run.
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// GetRunErrors returns the errors recorded for a run, newest first.
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY created_at DESC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []map[string]interface{}
	for rows.Next() {
		var message string
		var createdAt time.Time
		if err := rows.Scan(&message, &createdAt); err != nil {
			return nil, err
		}
		errors = append(errors, map[string]interface{}{
			"message":   message,
			"createdAt": createdAt,
		})
	}
	return errors, rows.Err()
}

// ListRuns returns all runs with basic info, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, mode, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, mode, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &mode, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"mode":      mode,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches one run with its full options.
func GetRun(runID string) (map[string]interface{}, error) {
	var optsJSON, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT options, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&optsJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var opts model.ReportOptions
	if err := json.Unmarshal([]byte(optsJSON), &opts); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"options":   opts,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// SaveSummaries stores the department summaries a run computed, keyed by
// their position so report order survives the round trip.
func SaveSummaries(runID string, summaries []model.DepartmentSummary) error {
	for i, s := range summaries {
		_, err := db.Exec(
			`INSERT INTO run_summaries (run_id, position, department, headcount, min_salary, max_salary, average_salary)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, i, s.Name, s.Headcount, s.MinSalary, s.MaxSalary, s.AverageSalary)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetSummaries returns a run's department summaries in report order.
func GetSummaries(runID string) ([]model.DepartmentSummary, error) {
	rows, err := db.Query(
		`SELECT department, headcount, min_salary, max_salary, average_salary
		 FROM run_summaries WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.DepartmentSummary
	for rows.Next() {
		var s model.DepartmentSummary
		if err := rows.Scan(&s.Name, &s.Headcount, &s.MinSalary, &s.MaxSalary, &s.AverageSalary); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
