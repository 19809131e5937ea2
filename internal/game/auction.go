package game

import "mopoly/internal/board"

const (
	// AuctionFloor is the opening bid of every auction.
	AuctionFloor = 20
	// AuctionStep is the fixed raise over the current highest bid.
	AuctionStep = 20
)

// runAuction sells a declined space by English open-outcry ascending
// auction. Every living player, the decliner included, is offered the next
// raise in seating order; a full round with no raise ends the auction. With
// zero bids the space simply stays unowned.
func (g *Game) runAuction(sp board.Space) {
	high := 0
	winner := -1
	for {
		raised := false
		for _, p := range g.players {
			if !p.Alive || p.ID == winner {
				continue
			}
			next := high + AuctionStep
			if winner == -1 {
				next = AuctionFloor
			}
			if !p.canAfford(next) || !g.strategy.WantsToBid(p.Balance, next, sp) {
				continue
			}
			high = next
			winner = p.ID
			raised = true
			g.log.Debug("auction raise", "space", sp.Index, "player", p.ID, "bid", high)
		}
		if !raised {
			break
		}
	}

	if winner == -1 {
		g.record(Event{Player: -1, Kind: EventAuctionUnsold, Space: sp.Index, Other: -1})
		return
	}
	w := g.players[winner]
	w.debit(high)
	g.assignOwner(w, sp.Index)
	g.record(Event{Player: w.ID, Kind: EventAuctionWon, Space: sp.Index, Amount: high, Other: -1})
	if w.insolvent() {
		g.bankruptToBank(w)
	}
}
