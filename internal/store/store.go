// Package store provides the SQLite-backed records repository for
// transactions, goals, and challenges. The evaluation engine never touches
// it; commands load records here, evaluate, and persist the results back.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nestegg-dev/nestegg/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns the XDG-compliant database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "nestegg", "nestegg.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "nestegg", "nestegg.db")
}

// ─── Transactions ───────────────────────────────────────────────

// AddTransaction inserts a ledger entry and returns it with its ID set.
func (s *Store) AddTransaction(tx model.Transaction) (model.Transaction, error) {
	res, err := s.db.Exec(`INSERT INTO transactions (date, amount, type, category, note)
		VALUES (?, ?, ?, ?, ?)`,
		model.FormatDay(model.Day(tx.Date)), tx.Amount, string(tx.Type), tx.Category, tx.Note,
	)
	if err != nil {
		return tx, fmt.Errorf("inserting transaction: %w", err)
	}
	tx.ID, _ = res.LastInsertId()
	return tx, nil
}

// Transactions returns all ledger entries, oldest first.
func (s *Store) Transactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, date, amount, type, category, note
		FROM transactions ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	now := time.Now()
	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var date, typ string
		if err := rows.Scan(&tx.ID, &date, &tx.Amount, &typ, &tx.Category, &tx.Note); err != nil {
			return nil, err
		}
		tx.Date = model.ParseDay(date, now)
		tx.Type = model.TransactionType(typ)
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// ─── Goals ──────────────────────────────────────────────────────

// SaveGoal inserts or updates a goal and rewrites its contribution history.
// A zero ID inserts; the returned goal carries the assigned ID.
func (s *Store) SaveGoal(g model.Goal) (model.Goal, error) {
	dbtx, err := s.db.Begin()
	if err != nil {
		return g, err
	}
	defer func() { _ = dbtx.Rollback() }()

	var amount sql.NullFloat64
	var freq, lastDate, nextDate sql.NullString
	if g.Plan != nil {
		amount = sql.NullFloat64{Float64: g.Plan.Amount, Valid: true}
		freq = sql.NullString{String: string(g.Plan.Frequency), Valid: true}
		if !g.Plan.LastContributionDate.IsZero() {
			lastDate = sql.NullString{String: model.FormatDay(g.Plan.LastContributionDate), Valid: true}
		}
		if !g.Plan.NextContributionDate.IsZero() {
			nextDate = sql.NullString{String: model.FormatDay(g.Plan.NextContributionDate), Valid: true}
		}
	}
	var targetDate sql.NullString
	if !g.TargetDate.IsZero() {
		targetDate = sql.NullString{String: model.FormatDay(g.TargetDate), Valid: true}
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = model.Day(time.Now())
	}

	if g.ID == 0 {
		res, err := dbtx.Exec(`INSERT INTO goals
			(name, current_amount, target_amount, contribution_amount, contribution_frequency,
			 last_contribution_date, next_contribution_date, target_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.Name, g.CurrentAmount, g.TargetAmount, amount, freq,
			lastDate, nextDate, targetDate, model.FormatDay(g.CreatedAt),
		)
		if err != nil {
			return g, fmt.Errorf("inserting goal: %w", err)
		}
		g.ID, _ = res.LastInsertId()
	} else {
		_, err := dbtx.Exec(`UPDATE goals SET
			name = ?, current_amount = ?, target_amount = ?, contribution_amount = ?,
			contribution_frequency = ?, last_contribution_date = ?, next_contribution_date = ?,
			target_date = ?
			WHERE id = ?`,
			g.Name, g.CurrentAmount, g.TargetAmount, amount, freq,
			lastDate, nextDate, targetDate, g.ID,
		)
		if err != nil {
			return g, fmt.Errorf("updating goal: %w", err)
		}
	}

	// History is small (last N entries matter); rewrite it wholesale.
	if _, err := dbtx.Exec("DELETE FROM goal_contributions WHERE goal_id = ?", g.ID); err != nil {
		return g, err
	}
	for i, entry := range g.History {
		_, err := dbtx.Exec(`INSERT INTO goal_contributions (goal_id, seq, date, amount)
			VALUES (?, ?, ?, ?)`,
			g.ID, i, model.FormatDay(model.Day(entry.Date)), entry.Amount,
		)
		if err != nil {
			return g, fmt.Errorf("inserting contribution history: %w", err)
		}
	}

	return g, dbtx.Commit()
}

// Goals returns all goals with their contribution history loaded.
func (s *Store) Goals() ([]model.Goal, error) {
	rows, err := s.db.Query(`SELECT
		id, name, current_amount, target_amount, contribution_amount, contribution_frequency,
		last_contribution_date, next_contribution_date, target_date, created_at
		FROM goals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	now := time.Now()
	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var amount sql.NullFloat64
		var freq, lastDate, nextDate, targetDate sql.NullString
		var createdAt string

		err := rows.Scan(&g.ID, &g.Name, &g.CurrentAmount, &g.TargetAmount,
			&amount, &freq, &lastDate, &nextDate, &targetDate, &createdAt)
		if err != nil {
			return nil, err
		}

		if amount.Valid && freq.Valid {
			plan := &model.ContributionPlan{
				Amount:    amount.Float64,
				Frequency: model.Frequency(freq.String),
			}
			if lastDate.Valid && lastDate.String != "" {
				plan.LastContributionDate = model.ParseDay(lastDate.String, now)
			}
			if nextDate.Valid && nextDate.String != "" {
				plan.NextContributionDate = model.ParseDay(nextDate.String, now)
			}
			g.Plan = plan
		}
		if targetDate.Valid && targetDate.String != "" {
			g.TargetDate = model.ParseDay(targetDate.String, now)
		}
		g.CreatedAt = model.ParseDay(createdAt, now)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Batch-load contribution history.
	histRows, err := s.db.Query(`SELECT goal_id, date, amount
		FROM goal_contributions ORDER BY goal_id, seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = histRows.Close() }()

	idx := make(map[int64]int, len(goals))
	for i, g := range goals {
		idx[g.ID] = i
	}
	for histRows.Next() {
		var goalID int64
		var date string
		var entry model.ContributionHistoryEntry
		if err := histRows.Scan(&goalID, &date, &entry.Amount); err != nil {
			return nil, err
		}
		entry.Date = model.ParseDay(date, now)
		if i, ok := idx[goalID]; ok {
			goals[i].History = append(goals[i].History, entry)
		}
	}
	return goals, histRows.Err()
}

// DeleteGoal removes a goal and its history.
func (s *Store) DeleteGoal(id int64) error {
	_, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	return err
}

// ─── Challenges ─────────────────────────────────────────────────

// SaveChallenge inserts or updates a challenge. A zero ID inserts; the
// returned record carries the assigned ID.
func (s *Store) SaveChallenge(c model.SavingsChallenge) (model.SavingsChallenge, error) {
	if c.ID == 0 {
		res, err := s.db.Exec(`INSERT INTO challenges
			(name, type, start_date, end_date, duration_days, target_progress,
			 current_progress, target_category, status, streak_days)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Name, string(c.Type), model.FormatDay(c.StartDate), model.FormatDay(c.EndDate),
			c.DurationDays, c.TargetProgress, c.CurrentProgress, c.TargetCategory,
			string(c.Status), c.StreakDays,
		)
		if err != nil {
			return c, fmt.Errorf("inserting challenge: %w", err)
		}
		c.ID, _ = res.LastInsertId()
		return c, nil
	}

	_, err := s.db.Exec(`UPDATE challenges SET
		name = ?, type = ?, start_date = ?, end_date = ?, duration_days = ?,
		target_progress = ?, current_progress = ?, target_category = ?, status = ?, streak_days = ?
		WHERE id = ?`,
		c.Name, string(c.Type), model.FormatDay(c.StartDate), model.FormatDay(c.EndDate),
		c.DurationDays, c.TargetProgress, c.CurrentProgress, c.TargetCategory,
		string(c.Status), c.StreakDays, c.ID,
	)
	if err != nil {
		return c, fmt.Errorf("updating challenge: %w", err)
	}
	return c, nil
}

// SaveChallenges persists a batch of evaluated challenges in one
// transaction (the post-evaluation write-back path).
func (s *Store) SaveChallenges(cs []model.SavingsChallenge) error {
	dbtx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbtx.Rollback() }()

	for _, c := range cs {
		if c.ID == 0 {
			continue // unsaved records go through SaveChallenge
		}
		_, err := dbtx.Exec(`UPDATE challenges SET current_progress = ?, status = ?, streak_days = ?
			WHERE id = ?`,
			c.CurrentProgress, string(c.Status), c.StreakDays, c.ID,
		)
		if err != nil {
			return fmt.Errorf("updating challenge %d: %w", c.ID, err)
		}
	}
	return dbtx.Commit()
}

// Challenges returns all challenges, newest first.
func (s *Store) Challenges() ([]model.SavingsChallenge, error) {
	rows, err := s.db.Query(`SELECT
		id, name, type, start_date, end_date, duration_days, target_progress,
		current_progress, target_category, status, streak_days
		FROM challenges ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	now := time.Now()
	var cs []model.SavingsChallenge
	for rows.Next() {
		var c model.SavingsChallenge
		var typ, start, end, status string
		err := rows.Scan(&c.ID, &c.Name, &typ, &start, &end, &c.DurationDays,
			&c.TargetProgress, &c.CurrentProgress, &c.TargetCategory, &status, &c.StreakDays)
		if err != nil {
			return nil, err
		}
		c.Type = model.ChallengeType(typ)
		c.StartDate = model.ParseDay(start, now)
		c.EndDate = model.ParseDay(end, now)
		c.Status = model.ChallengeStatus(status)
		cs = append(cs, c)
	}
	return cs, rows.Err()
}

// DeleteChallenge removes a challenge.
func (s *Store) DeleteChallenge(id int64) error {
	_, err := s.db.Exec("DELETE FROM challenges WHERE id = ?", id)
	return err
}
