package game

// NoOwner marks a property state with no owning player.
const NoOwner = -1

// MaxBuildings is the building cap per property; reaching it means the four
// houses have been replaced by a hotel.
const MaxBuildings = 5

// PropertyState is the mutable side of a purchasable space. The owner is a
// player id, never a pointer into the roster, so ownership stays acyclic.
type PropertyState struct {
	Owner     int
	Buildings int
}

// Player is the mutable per-participant state. A dead player never acts
// again but stays in the roster for final reporting.
type Player struct {
	ID            int
	Balance       int
	Position      int
	Imprisoned    bool
	Alive         bool
	JailFreeCards int
	Owned         []int // space indexes, in acquisition order
	Rolls         int   // total dice rolls, jail attempts included

	recentRolls  []Roll // last three, for the triple-double rule
	jailAttempts int    // rolls since the current imprisonment began
	lastRollSum  int    // drives utility rent
}

func newPlayer(id, balance int) *Player {
	return &Player{ID: id, Balance: balance, Alive: true}
}

// recordRoll appends a roll to the bounded history and reports whether the
// last three rolls, this one included, were all doubles.
func (p *Player) recordRoll(r Roll) bool {
	p.recentRolls = append(p.recentRolls, r)
	if len(p.recentRolls) > 3 {
		p.recentRolls = p.recentRolls[len(p.recentRolls)-3:]
	}
	if len(p.recentRolls) < 3 {
		return false
	}
	for _, roll := range p.recentRolls {
		if !roll.IsDouble() {
			return false
		}
	}
	return true
}

func (p *Player) credit(amount int) {
	p.Balance += amount
}

// debit removes up to amount from the balance and returns what was actually
// taken. The balance is clamped at zero; insolvency is the caller's signal
// to start bankruptcy, not a negative number.
func (p *Player) debit(amount int) int {
	taken := amount
	if taken > p.Balance {
		taken = p.Balance
	}
	p.Balance -= taken
	return taken
}

// insolvent reports whether the player has been driven to or below zero.
func (p *Player) insolvent() bool {
	return p.Balance <= 0
}

func (p *Player) canAfford(amount int) bool {
	return p.Balance >= amount
}
