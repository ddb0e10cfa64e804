package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one play-through of a quiz set.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Seed       int64
	Questions  int
	Correct    int
}

// Attempt is one answered question within a run.
type Attempt struct {
	ID           string
	RunID        string
	QuestionID   string
	QuestionType string
	Command      string
	ChosenIndex  int
	Correct      bool
	AnsweredAt   time.Time
}

// StartRun records the beginning of a quiz run and returns its ID.
func (s *Store) StartRun(ctx context.Context, seed int64, questions int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, seed, questions, correct) VALUES (?, ?, ?, ?, 0)`,
		id, time.Now().UTC(), seed, questions)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	return id, nil
}

// RecordAttempt stores one answered question.
func (s *Store) RecordAttempt(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, run_id, question_id, question_type, command, chosen_index, correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.RunID, a.QuestionID, a.QuestionType, a.Command, a.ChosenIndex, a.Correct, a.AnsweredAt)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// FinishRun stamps the run's end time and final score.
func (s *Store) FinishRun(ctx context.Context, runID string, correct int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, correct = ? WHERE id = ?`,
		time.Now().UTC(), correct, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecentRuns returns the latest n runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, COALESCE(finished_at, started_at), seed, questions, correct
		 FROM runs ORDER BY started_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Seed, &r.Questions, &r.Correct); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// TypeStats aggregates attempts for one question type.
type TypeStats struct {
	Attempts int
	Correct  int
}

// Stats summarizes all recorded quiz history.
type Stats struct {
	Runs     int
	Attempts int
	Correct  int
	ByType   map[string]TypeStats
	// WeakCommands lists commands with the most wrong answers, worst
	// first, capped at ten.
	WeakCommands []string
}

// Stats aggregates the full attempt history.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByType: make(map[string]TypeStats)}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&st.Runs); err != nil {
		return nil, fmt.Errorf("count runs: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT question_type, COUNT(*), SUM(correct) FROM attempts GROUP BY question_type`)
	if err != nil {
		return nil, fmt.Errorf("attempt stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var typ string
		var attempts int
		var correct sql.NullInt64
		if err := rows.Scan(&typ, &attempts, &correct); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		ts := TypeStats{Attempts: attempts, Correct: int(correct.Int64)}
		st.ByType[typ] = ts
		st.Attempts += attempts
		st.Correct += ts.Correct
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	weak, err := s.db.QueryContext(ctx,
		`SELECT command FROM attempts WHERE correct = 0
		 GROUP BY command ORDER BY COUNT(*) DESC, command ASC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("weak commands: %w", err)
	}
	defer weak.Close()
	for weak.Next() {
		var cmd string
		if err := weak.Scan(&cmd); err != nil {
			return nil, fmt.Errorf("scan weak command: %w", err)
		}
		st.WeakCommands = append(st.WeakCommands, cmd)
	}
	return st, weak.Err()
}
