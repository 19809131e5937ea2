package game

import "mopoly/internal/board"

// Strategy decides the three discretionary moves a player can make. The
// engine supplies the player's balance so implementations stay free of
// game-state aliasing; everything else a strategy may want is on the space.
type Strategy interface {
	// WantsToBuy is asked when the player lands on an unowned space.
	WantsToBuy(balance int, sp board.Space) bool
	// WantsToBid is asked once per auction round with the price the player
	// would have to commit to stay in.
	WantsToBid(balance int, bid int, sp board.Space) bool
	// WantsToBuild is asked for each monopoly property below the building cap.
	WantsToBuild(balance int, sp board.Space) bool
}

// Greedy is the default strategy: accept anything affordable.
type Greedy struct{}

func (Greedy) WantsToBuy(balance int, sp board.Space) bool {
	return balance >= sp.Price
}

func (Greedy) WantsToBid(balance int, bid int, sp board.Space) bool {
	return balance >= bid
}

func (Greedy) WantsToBuild(balance int, sp board.Space) bool {
	return balance >= sp.HousePrice
}
