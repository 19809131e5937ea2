// Package game implements the deterministic turn engine for a multi-player
// board economy match: movement, rent settlement, card decks, building,
// auctions, bankruptcy and termination. One Game owns all mutable state for
// a single run; nothing here is safe for concurrent use and nothing needs
// to be.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"mopoly/internal/board"
)

const (
	// PassGoBonus is credited once per forward wrap around the board.
	PassGoBonus = 200

	// DefaultMaxTurns bounds a match that never reaches the one-survivor
	// condition. Two entrenched players can trade rent forever while the
	// pass-go credit keeps both solvent, so the engine needs an exit.
	DefaultMaxTurns = 100_000

	jailReleaseAttempts = 3
)

var (
	ErrPlayerCount     = errors.New("at least two players required")
	ErrStartingBalance = errors.New("starting balance must be positive")
)

// Config carries the run parameters supplied at construction time.
type Config struct {
	Players         int
	StartingBalance int
	Seed            int64
	Board           *board.Board // nil means the embedded default layout
	Strategy        Strategy     // nil means Greedy
	MaxTurns        int          // 0 means DefaultMaxTurns
	Logger          *slog.Logger // nil means slog.Default
}

// Game is the state aggregate for one simulation run. It exclusively owns
// the roster, property states, decks and the random stream.
type Game struct {
	board    *board.Board
	rng      *rand.Rand
	dice     dice
	chance   *Deck
	chest    *Deck
	players  []*Player
	props    []PropertyState
	strategy Strategy
	maxTurns int
	log      *slog.Logger

	turn   int
	active int
	events []Event
}

// New builds a ready-to-run game. The random stream is consumed in a fixed
// order (chance shuffle, chest shuffle, then dice rolls), which is what
// makes identical seeds produce identical runs.
func New(cfg Config) (*Game, error) {
	if cfg.Players < 2 {
		return nil, ErrPlayerCount
	}
	if cfg.StartingBalance <= 0 {
		return nil, ErrStartingBalance
	}
	b := cfg.Board
	if b == nil {
		b = board.Default()
	}
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = Greedy{}
	}
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		board:    b,
		rng:      rng,
		dice:     dice{rng: rng},
		chance:   NewDeck(chanceCatalogue(), rng),
		chest:    NewDeck(chestCatalogue(), rng),
		props:    make([]PropertyState, board.Size),
		strategy: strategy,
		maxTurns: maxTurns,
		log:      logger,
	}
	for i := range g.props {
		g.props[i].Owner = NoOwner
	}
	for i := 0; i < cfg.Players; i++ {
		g.players = append(g.players, newPlayer(i, cfg.StartingBalance))
	}
	return g, nil
}

// Run plays the match to completion and returns the final standings. It is
// a plain synchronous reduction: no goroutines, no cancellation, bounded by
// the termination condition and the turn cap.
func (g *Game) Run() Result {
	for g.aliveCount() > 1 && g.turn < g.maxTurns {
		g.turn++
		g.playTurn(g.players[g.active])
		g.active = g.nextSeat(g.active)
	}

	winner := -1
	if g.aliveCount() == 1 {
		for _, p := range g.players {
			if p.Alive {
				winner = p.ID
			}
		}
	}
	g.record(Event{Player: winner, Kind: EventGameOver, Space: -1, Other: -1})
	return g.result(winner)
}

// Events returns the per-turn event trace accumulated so far.
func (g *Game) Events() []Event {
	return g.events
}

func (g *Game) playTurn(p *Player) {
	// Roll and move, unless imprisoned; the jail space handler below owns
	// in-jail rolls.
	if !p.Imprisoned {
		roll := g.dice.roll()
		p.Rolls++
		p.lastRollSum = roll.Sum()
		tripleDouble := p.recordRoll(roll)
		g.record(Event{Player: p.ID, Kind: EventRoll, Space: -1, Amount: roll.Sum(), Other: -1, Detail: fmt.Sprintf("%d+%d", roll.Die1, roll.Die2)})
		if tripleDouble {
			g.imprison(p)
		} else {
			g.moveForward(p, roll.Sum())
		}
	}

	sp := g.board.Space(p.Position)
	switch sp.Category {
	case board.CategoryGo, board.CategoryFreeParking:
		// Nothing beyond the move already made.
	case board.CategoryProperty, board.CategoryRailroad, board.CategoryUtility:
		g.landOnPurchasable(p, sp)
	case board.CategoryCommunityChest:
		g.drawCard(p, g.chest)
	case board.CategoryChance:
		g.drawCard(p, g.chance)
	case board.CategoryTax:
		paid := p.debit(sp.Price)
		g.record(Event{Player: p.ID, Kind: EventTax, Space: sp.Index, Amount: paid, Other: -1})
		if p.insolvent() {
			g.bankruptToBank(p)
		}
	case board.CategoryGoToJail:
		g.imprison(p)
	case board.CategoryJail:
		g.jailTurn(p)
	default:
		panic(fmt.Sprintf("unhandled space category %q at %d", sp.Category, sp.Index))
	}

	if p.Alive {
		g.buildHouses(p)
	}
}

func (g *Game) landOnPurchasable(p *Player, sp board.Space) {
	st := &g.props[sp.Index]
	switch {
	case st.Owner == p.ID:
		// Own holding; nothing due.
	case st.Owner != NoOwner:
		owner := g.players[st.Owner]
		due := g.rentDue(sp, owner, p)
		paid := g.settleDebt(p, owner, due)
		g.record(Event{Player: p.ID, Kind: EventRent, Space: sp.Index, Amount: paid, Other: owner.ID})
		if p.insolvent() {
			g.bankruptToCreditor(p, owner)
		}
	default:
		if g.strategy.WantsToBuy(p.Balance, sp) && p.canAfford(sp.Price) {
			p.debit(sp.Price)
			g.assignOwner(p, sp.Index)
			g.record(Event{Player: p.ID, Kind: EventPurchase, Space: sp.Index, Amount: sp.Price, Other: -1})
			if p.insolvent() {
				g.bankruptToBank(p)
			}
		} else {
			g.runAuction(sp)
		}
	}
}

// rentDue computes what the landing player owes by space category.
func (g *Game) rentDue(sp board.Space, owner, debtor *Player) int {
	switch sp.Category {
	case board.CategoryProperty:
		return sp.Rent[g.props[sp.Index].Buildings]
	case board.CategoryRailroad:
		n := g.ownedInGroup(owner, sp.Group)
		return 25 << (n - 1) // 25, 50, 100, 200
	case board.CategoryUtility:
		switch g.ownedInGroup(owner, sp.Group) {
		case 1:
			return 4 * debtor.lastRollSum
		case 2:
			return 10 * debtor.lastRollSum
		default:
			return 0
		}
	default:
		panic(fmt.Sprintf("rent due on non-purchasable category %q", sp.Category))
	}
}

func (g *Game) ownedInGroup(p *Player, group string) int {
	n := 0
	for _, idx := range g.board.Group(group) {
		if g.props[idx].Owner == p.ID {
			n++
		}
	}
	return n
}

// settleDebt is the single inter-player transfer primitive: the debtor pays
// the full amount or, failing that, everything they have. The creditor's
// gain always equals the debtor's loss.
func (g *Game) settleDebt(debtor, creditor *Player, amount int) int {
	paid := debtor.debit(amount)
	creditor.credit(paid)
	return paid
}

func (g *Game) moveForward(p *Player, steps int) {
	prev := p.Position
	p.Position = (prev + steps) % board.Size
	if p.Position < prev {
		p.credit(PassGoBonus)
		g.record(Event{Player: p.ID, Kind: EventPassGo, Space: -1, Amount: PassGoBonus, Other: -1})
	}
}

// moveTo advances the player forward to a fixed space; reaching it through
// the wrap credits the pass-go bonus exactly once.
func (g *Game) moveTo(p *Player, idx int) {
	if idx <= p.Position {
		p.credit(PassGoBonus)
		g.record(Event{Player: p.ID, Kind: EventPassGo, Space: -1, Amount: PassGoBonus, Other: -1})
	}
	p.Position = idx
}

func (g *Game) imprison(p *Player) {
	p.Imprisoned = true
	p.jailAttempts = 0
	p.Position = board.JailIndex
	g.record(Event{Player: p.ID, Kind: EventGoToJail, Space: board.JailIndex, Other: -1})
}

// jailTurn consumes one in-jail roll attempt. Release comes from a double,
// from the third attempt unconditionally, or from spending a jail-free
// card; a released player moves by the releasing roll with the usual
// pass-go rule.
func (g *Game) jailTurn(p *Player) {
	if !p.Imprisoned {
		return
	}
	roll := g.dice.roll()
	p.Rolls++
	p.jailAttempts++
	p.lastRollSum = roll.Sum()
	g.record(Event{Player: p.ID, Kind: EventJailRoll, Space: board.JailIndex, Amount: roll.Sum(), Other: -1, Detail: fmt.Sprintf("%d+%d", roll.Die1, roll.Die2)})

	released := false
	switch {
	case roll.IsDouble():
		released = true
	case p.jailAttempts >= jailReleaseAttempts:
		released = true
	case p.JailFreeCards > 0:
		p.JailFreeCards--
		released = true
	}
	if !released {
		return
	}
	p.Imprisoned = false
	p.jailAttempts = 0
	g.record(Event{Player: p.ID, Kind: EventJailRelease, Space: board.JailIndex, Amount: roll.Sum(), Other: -1})
	g.moveForward(p, roll.Sum())
}

func (g *Game) drawCard(p *Player, deck *Deck) {
	card := deck.Draw()
	g.record(Event{Player: p.ID, Kind: EventCard, Space: p.Position, Other: -1, Detail: card.String()})
	g.applyCard(p, card)
	if p.Alive && p.insolvent() {
		g.bankruptToBank(p)
	}
}

func (g *Game) applyCard(p *Player, card Card) {
	switch card {
	case ChanceAdvanceToGo, ChestAdvanceToGo:
		g.moveTo(p, board.GoIndex)
	case ChanceGoToJail, ChestGoToJail:
		g.imprison(p)
	case ChanceAdvanceToStCharles:
		g.moveTo(p, board.StCharlesPlaceIndex)
	case ChanceAdvanceToPennsylvaniaRailroad:
		g.moveTo(p, board.PennsylvaniaRailroadIndex)
	case ChanceAdvanceToIllinois:
		g.moveTo(p, board.IllinoisAvenueIndex)
	case ChanceAdvanceToBoardwalk:
		g.moveTo(p, board.BoardwalkIndex)
	case ChanceGoBackThree:
		// Backward movement never earns the pass-go bonus.
		p.Position = (p.Position - 3 + board.Size) % board.Size
	case ChestBackToMediterranean:
		p.Position = board.MediterraneanAvenueIndex
	case ChanceGeneralRepairs:
		p.debit(g.repairBill(p, 25, 100))
	case ChanceStreetRepairs:
		p.debit(g.repairBill(p, 40, 115))
	case ChanceSchoolFees:
		p.debit(150)
	case ChanceDrunkFine:
		p.debit(20)
	case ChanceSpeedingFine:
		p.debit(15)
	case ChestHospitalFee:
		p.debit(100)
	case ChestDoctorsFee:
		p.debit(50)
	case ChestInsurancePremium:
		p.debit(50)
	case ChestFine:
		p.debit(10)
	case ChanceLoanMatures:
		p.credit(150)
	case ChanceCrosswordPrize:
		p.credit(100)
	case ChanceBankDividend:
		p.credit(50)
	case ChestBankError:
		p.credit(200)
	case ChestAnnuityMatures:
		p.credit(100)
	case ChestInheritance:
		p.credit(100)
	case ChestStockSale:
		p.credit(50)
	case ChestShareInterest:
		p.credit(25)
	case ChestTaxRefund:
		p.credit(20)
	case ChestBeautyContest:
		p.credit(10)
	case ChestBirthday:
		g.collectBirthday(p)
	case ChanceJailFree, ChestJailFree:
		p.JailFreeCards++
	default:
		panic(fmt.Sprintf("unhandled card %d", int(card)))
	}
}

// collectBirthday taxes every other living player a fixed per-capita amount
// through the debt settlement primitive; a payer driven to zero goes
// bankrupt to the collector.
func (g *Game) collectBirthday(p *Player) {
	const perPlayer = 10
	for _, other := range g.players {
		if !other.Alive || other.ID == p.ID {
			continue
		}
		paid := g.settleDebt(other, p, perPlayer)
		g.record(Event{Player: other.ID, Kind: EventRent, Space: -1, Amount: paid, Other: p.ID, Detail: "birthday collection"})
		if other.insolvent() {
			g.bankruptToCreditor(other, p)
		}
	}
}

func (g *Game) repairBill(p *Player, perHouse, perHotel int) int {
	houses, hotels := 0, 0
	for _, idx := range p.Owned {
		if g.board.Space(idx).Category != board.CategoryProperty {
			continue
		}
		if b := g.props[idx].Buildings; b == MaxBuildings {
			hotels++
		} else {
			houses += b
		}
	}
	return houses*perHouse + hotels*perHotel
}

// buildHouses adds at most one building per eligible monopoly property this
// turn. Eligibility is full ownership of the property's group; railroads
// and utilities never build.
func (g *Game) buildHouses(p *Player) {
	for _, idx := range append([]int(nil), p.Owned...) {
		sp := g.board.Space(idx)
		if sp.Category != board.CategoryProperty {
			continue
		}
		if !g.ownsGroup(p, sp.Group) {
			continue
		}
		st := &g.props[idx]
		if st.Buildings >= MaxBuildings {
			continue
		}
		if !g.strategy.WantsToBuild(p.Balance, sp) || !p.canAfford(sp.HousePrice) {
			continue
		}
		p.debit(sp.HousePrice)
		st.Buildings++
		g.record(Event{Player: p.ID, Kind: EventBuild, Space: idx, Amount: sp.HousePrice, Other: -1})
		if p.insolvent() {
			g.bankruptToBank(p)
			return
		}
	}
}

func (g *Game) ownsGroup(p *Player, group string) bool {
	members := g.board.Group(group)
	if len(members) == 0 {
		return false
	}
	for _, idx := range members {
		if g.props[idx].Owner != p.ID {
			return false
		}
	}
	return true
}

func (g *Game) assignOwner(p *Player, idx int) {
	g.props[idx].Owner = p.ID
	p.Owned = append(p.Owned, idx)
}

// bankruptToBank razes and releases every holding back to the bank. The
// player is dead from here on but stays in the roster.
func (g *Game) bankruptToBank(p *Player) {
	for _, idx := range p.Owned {
		g.props[idx].Buildings = 0
		g.props[idx].Owner = NoOwner
	}
	p.Owned = nil
	p.Alive = false
	g.record(Event{Player: p.ID, Kind: EventBankruptToBank, Space: -1, Other: -1})
}

// bankruptToCreditor razes every holding and hands it to the creditor who
// triggered the collapse. Razing always precedes the transfer; a hotel
// never survives an ownership change.
func (g *Game) bankruptToCreditor(p, creditor *Player) {
	for _, idx := range p.Owned {
		g.props[idx].Buildings = 0
		g.props[idx].Owner = creditor.ID
		creditor.Owned = append(creditor.Owned, idx)
	}
	p.Owned = nil
	p.Alive = false
	g.record(Event{Player: p.ID, Kind: EventBankruptToPlayer, Space: -1, Other: creditor.ID})
}

// nextSeat returns the next living player in original seating order. The
// current seat is an acceptable fallback so a sole survivor keeps the turn
// rather than deadlocking the rotation.
func (g *Game) nextSeat(cur int) int {
	n := len(g.players)
	for off := 1; off < n; off++ {
		idx := (cur + off) % n
		if g.players[idx].Alive {
			return idx
		}
	}
	return cur
}

func (g *Game) aliveCount() int {
	n := 0
	for _, p := range g.players {
		if p.Alive {
			n++
		}
	}
	return n
}

func (g *Game) record(e Event) {
	e.Turn = g.turn
	g.events = append(g.events, e)
	g.log.Debug("event", "turn", e.Turn, "player", e.Player, "kind", string(e.Kind), "space", e.Space, "amount", e.Amount, "detail", e.Detail)
}
