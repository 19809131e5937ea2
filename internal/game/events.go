package game

import (
	"fmt"
	"strings"
)

// EventKind labels one entry in the per-turn event trace.
type EventKind string

const (
	EventRoll             EventKind = "roll"
	EventPassGo           EventKind = "pass-go"
	EventPurchase         EventKind = "purchase"
	EventRent             EventKind = "rent"
	EventTax              EventKind = "tax"
	EventCard             EventKind = "card"
	EventGoToJail         EventKind = "go-to-jail"
	EventJailRoll         EventKind = "jail-roll"
	EventJailRelease      EventKind = "jail-release"
	EventBuild            EventKind = "build"
	EventAuctionWon       EventKind = "auction-won"
	EventAuctionUnsold    EventKind = "auction-unsold"
	EventBankruptToBank   EventKind = "bankrupt-to-bank"
	EventBankruptToPlayer EventKind = "bankrupt-to-player"
	EventGameOver         EventKind = "game-over"
)

// Event is one state change in a run. The trace is append-only and fully
// determined by the seed, which makes it the surface the determinism tests
// compare.
type Event struct {
	Turn   int
	Player int
	Kind   EventKind
	Space  int    // space index, -1 when not tied to one
	Amount int    // money moved or roll total, 0 when not applicable
	Other  int    // counterparty player id, -1 when none
	Detail string // card name or dice faces
}

func (e Event) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn=%d player=%d %s", e.Turn, e.Player, e.Kind)
	if e.Space >= 0 {
		fmt.Fprintf(&sb, " space=%d", e.Space)
	}
	if e.Amount != 0 {
		fmt.Fprintf(&sb, " amount=%d", e.Amount)
	}
	if e.Other >= 0 {
		fmt.Fprintf(&sb, " other=%d", e.Other)
	}
	if e.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", e.Detail)
	}
	return sb.String()
}

// Trace renders the full event log, one event per line.
func Trace(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
