package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// RunRecord represents one stored search invocation.
type RunRecord struct {
	RunID           string
	CreatedAt       string
	Alg             string
	MaxDepth        int
	CheapMoves      string
	StickerNotation bool
	ShowAll         bool
	Found           bool
	ReorientCount   int
	SolutionCount   int
}

// RunRepository provides CRUD operations for search runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create stores a run and returns its generated ID.
func (r *RunRepository) Create(run RunRecord) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, alg, max_depth, cheap_moves, sticker_notation, show_all, found, reorient_count, solution_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, run.Alg, run.MaxDepth, run.CheapMoves, run.StickerNotation, run.ShowAll, run.Found, run.ReorientCount, run.SolutionCount)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// List retrieves the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]RunRecord, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, alg, max_depth, cheap_moves, sticker_notation, show_all, found, reorient_count, solution_count
		FROM runs
		ORDER BY created_at DESC, run_id
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		err := rows.Scan(&run.RunID, &run.CreatedAt, &run.Alg, &run.MaxDepth, &run.CheapMoves,
			&run.StickerNotation, &run.ShowAll, &run.Found, &run.ReorientCount, &run.SolutionCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Get retrieves one run by ID.
func (r *RunRepository) Get(runID string) (*RunRecord, error) {
	var run RunRecord
	err := r.db.QueryRow(`
		SELECT run_id, created_at, alg, max_depth, cheap_moves, sticker_notation, show_all, found, reorient_count, solution_count
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&run.RunID, &run.CreatedAt, &run.Alg, &run.MaxDepth, &run.CheapMoves,
		&run.StickerNotation, &run.ShowAll, &run.Found, &run.ReorientCount, &run.SolutionCount)

	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &run, nil
}
