package storage

import (
	"fmt"
)

// SolutionRecord represents one retained solution line of a run.
type SolutionRecord struct {
	SolutionID int64
	RunID      string
	Position   int
	Cost       int
	Line       string
}

// SolutionRepository provides CRUD operations for stored solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create stores one solution line and returns its ID.
func (r *SolutionRepository) Create(runID string, position, cost int, line string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO solutions (run_id, position, cost, line)
		VALUES (?, ?, ?, ?)
	`, runID, position, cost, line)

	if err != nil {
		return 0, fmt.Errorf("failed to create solution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get solution ID: %w", err)
	}

	return id, nil
}

// GetByRun retrieves all solution lines for a run in position order.
func (r *SolutionRepository) GetByRun(runID string) ([]SolutionRecord, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, run_id, position, cost, line
		FROM solutions
		WHERE run_id = ?
		ORDER BY position
	`, runID)

	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	defer rows.Close()

	var solutions []SolutionRecord
	for rows.Next() {
		var s SolutionRecord
		if err := rows.Scan(&s.SolutionID, &s.RunID, &s.Position, &s.Cost, &s.Line); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		solutions = append(solutions, s)
	}

	return solutions, rows.Err()
}
