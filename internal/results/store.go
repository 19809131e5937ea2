// Package results persists simulation standings in SQLite so past runs can
// be listed, inspected and served after the process exits.
package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mopoly/internal/game"

	_ "modernc.org/sqlite"
)

// ErrRunNotFound is returned when a run id has no stored record.
var ErrRunNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id               TEXT PRIMARY KEY,
	seed             INTEGER NOT NULL,
	players          INTEGER NOT NULL,
	starting_balance INTEGER NOT NULL,
	games            INTEGER NOT NULL,
	created_at       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS standings (
	run_id     TEXT NOT NULL REFERENCES runs(id),
	game_no    INTEGER NOT NULL,
	winner     INTEGER NOT NULL,
	turns      INTEGER NOT NULL,
	player_id  INTEGER NOT NULL,
	balance    INTEGER NOT NULL,
	rolls      INTEGER NOT NULL,
	properties INTEGER NOT NULL,
	buildings  INTEGER NOT NULL,
	alive      INTEGER NOT NULL,
	PRIMARY KEY (run_id, game_no, player_id)
);
`

// Run describes one stored simulation batch.
type Run struct {
	ID              string    `json:"id"`
	Seed            int64     `json:"seed"`
	Players         int       `json:"players"`
	StartingBalance int       `json:"starting_balance"`
	Games           int       `json:"games"`
	CreatedAt       time.Time `json:"created_at"`
}

// GameRecord is one stored match inside a run.
type GameRecord struct {
	GameNo    int             `json:"game_no"`
	Winner    int             `json:"winner"`
	Turns     int             `json:"turns"`
	Standings []game.Standing `json:"standings"`
}

// Store persists runs and standings in a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the store at path. ":memory:" gives an
// ephemeral store for tests.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateRun inserts the batch header record.
func (s *Store) CreateRun(ctx context.Context, run Run) error {
	if strings.TrimSpace(run.ID) == "" {
		return fmt.Errorf("run id is required")
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seed, players, starting_balance, games, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Seed, run.Players, run.StartingBalance, run.Games, createdAt.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// SaveGame stores the standings of one finished match under a run.
func (s *Store) SaveGame(ctx context.Context, runID string, gameNo int, res game.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, st := range res.Standings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO standings (run_id, game_no, winner, turns, player_id, balance, rolls, properties, buildings, alive)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, gameNo, res.Winner, res.Turns, st.PlayerID, st.Balance, st.Rolls, st.Properties, st.Buildings, boolToInt(st.Alive))
		if err != nil {
			return fmt.Errorf("insert standing: %w", err)
		}
	}
	return tx.Commit()
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed, players, starting_balance, games, created_at
		FROM runs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Seed, &r.Players, &r.StartingBalance, &r.Games, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns the run header for one id.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	var r Run
	var createdAt int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed, players, starting_balance, games, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Seed, &r.Players, &r.StartingBalance, &r.Games, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, err
	}
	r.CreatedAt = time.UnixMilli(createdAt).UTC()
	return r, nil
}

// RunGames returns every stored match of a run in game order.
func (s *Store) RunGames(ctx context.Context, runID string) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_no, winner, turns, player_id, balance, rolls, properties, buildings, alive
		FROM standings
		WHERE run_id = ?
		ORDER BY game_no, player_id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var gameNo, winner, turns, alive int
		var st game.Standing
		if err := rows.Scan(&gameNo, &winner, &turns, &st.PlayerID, &st.Balance, &st.Rolls, &st.Properties, &st.Buildings, &alive); err != nil {
			return nil, err
		}
		st.Alive = alive != 0
		if len(out) == 0 || out[len(out)-1].GameNo != gameNo {
			out = append(out, GameRecord{GameNo: gameNo, Winner: winner, Turns: turns})
		}
		last := &out[len(out)-1]
		last.Standings = append(last.Standings, st)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
