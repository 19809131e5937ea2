package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"mopoly/internal/game"
)

func mustStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestCreateRunAndGet(t *testing.T) {
	s := mustStore(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	run := Run{ID: "run-1", Seed: 42, Players: 4, StartingBalance: 1500, Games: 2, CreatedAt: created}
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	got, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got != run {
		t.Fatalf("got %+v, want %+v", got, run)
	}
}

func TestCreateRunRequiresID(t *testing.T) {
	s := mustStore(t)
	if err := s.CreateRun(context.Background(), Run{}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := mustStore(t)
	if _, err := s.GetRun(context.Background(), "nope"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("got %v, want ErrRunNotFound", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := mustStore(t)
	ctx := context.Background()

	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	if err := s.CreateRun(ctx, Run{ID: "old", Seed: 1, Players: 2, StartingBalance: 1500, Games: 1, CreatedAt: older}); err != nil {
		t.Fatalf("CreateRun old: %v", err)
	}
	if err := s.CreateRun(ctx, Run{ID: "new", Seed: 2, Players: 2, StartingBalance: 1500, Games: 1, CreatedAt: newer}); err != nil {
		t.Fatalf("CreateRun new: %v", err)
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "new" || runs[1].ID != "old" {
		t.Fatalf("unexpected order: %+v", runs)
	}
}

func TestSaveGameAndRunGames(t *testing.T) {
	s := mustStore(t)
	ctx := context.Background()

	run := Run{ID: "run-1", Seed: 7, Players: 2, StartingBalance: 1500, Games: 2, CreatedAt: time.Now()}
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	first := game.Result{
		Winner: 0,
		Turns:  120,
		Standings: []game.Standing{
			{PlayerID: 0, Balance: 2300, Rolls: 60, Properties: 9, Buildings: 4, Alive: true},
			{PlayerID: 1, Balance: 0, Rolls: 58, Properties: 0, Buildings: 0, Alive: false},
		},
	}
	second := game.Result{
		Winner: -1,
		Turns:  100000,
		Standings: []game.Standing{
			{PlayerID: 0, Balance: 900, Rolls: 50100, Properties: 5, Buildings: 1, Alive: true},
			{PlayerID: 1, Balance: 1100, Rolls: 50050, Properties: 6, Buildings: 2, Alive: true},
		},
	}
	if err := s.SaveGame(ctx, run.ID, 0, first); err != nil {
		t.Fatalf("SaveGame first: %v", err)
	}
	if err := s.SaveGame(ctx, run.ID, 1, second); err != nil {
		t.Fatalf("SaveGame second: %v", err)
	}

	games, err := s.RunGames(ctx, run.ID)
	if err != nil {
		t.Fatalf("RunGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	if games[0].GameNo != 0 || games[0].Winner != 0 || games[0].Turns != 120 {
		t.Fatalf("first game header: %+v", games[0])
	}
	if games[1].GameNo != 1 || games[1].Winner != -1 {
		t.Fatalf("second game header: %+v", games[1])
	}
	if len(games[0].Standings) != 2 || len(games[1].Standings) != 2 {
		t.Fatalf("standings counts: %d, %d", len(games[0].Standings), len(games[1].Standings))
	}
	if games[0].Standings[1] != first.Standings[1] {
		t.Fatalf("standing round-trip: got %+v, want %+v", games[0].Standings[1], first.Standings[1])
	}
}

func TestRunGamesEmptyRun(t *testing.T) {
	s := mustStore(t)
	games, err := s.RunGames(context.Background(), "missing")
	if err != nil {
		t.Fatalf("RunGames: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("got %d games, want 0", len(games))
	}
}
