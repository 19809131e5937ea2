// Package board loads and validates the static 40-space board layout.
package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// Category classifies what happens when a player lands on a space.
type Category string

const (
	CategoryGo             Category = "go"
	CategoryProperty       Category = "property"
	CategoryRailroad       Category = "railroad"
	CategoryUtility        Category = "utility"
	CategoryCommunityChest Category = "communitychest"
	CategoryChance         Category = "chance"
	CategoryTax            Category = "tax"
	CategoryJail           Category = "jail"
	CategoryFreeParking    Category = "freeparking"
	CategoryGoToJail       Category = "gotojail"
)

// Size is the number of spaces on the board.
const Size = 40

// Well-known space indexes. Card effects and the jail rules reference these
// directly, so every board layout must place them here.
const (
	GoIndex                   = 0
	MediterraneanAvenueIndex  = 1
	JailIndex                 = 10
	StCharlesPlaceIndex       = 11
	PennsylvaniaRailroadIndex = 15
	IllinoisAvenueIndex       = 24
	BoardwalkIndex            = 39
)

// Space is one immutable board position. Rent is indexed by building count
// (0 = unimproved, 5 = hotel) and is only present for properties.
type Space struct {
	Index      int      `json:"-"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	Group      string   `json:"group,omitempty"`
	Price      int      `json:"price,omitempty"`
	Rent       []int    `json:"rent,omitempty"`
	HousePrice int      `json:"house_price,omitempty"`
}

// Purchasable reports whether the space can be owned by a player.
func (s Space) Purchasable() bool {
	switch s.Category {
	case CategoryProperty, CategoryRailroad, CategoryUtility:
		return true
	}
	return false
}

// Board is the ordered, read-only sequence of spaces for one game layout.
type Board struct {
	spaces []Space
	groups map[string][]int
}

// Load reads and validates a board layout from a JSON file.
func Load(path string) (*Board, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}
	b, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("board file %s: %w", path, err)
	}
	return b, nil
}

func parse(raw []byte) (*Board, error) {
	var spaces []Space
	if err := json.Unmarshal(raw, &spaces); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	b := &Board{spaces: spaces, groups: make(map[string][]int)}
	for i := range b.spaces {
		b.spaces[i].Index = i
		if g := b.spaces[i].Group; g != "" {
			b.groups[g] = append(b.groups[g], i)
		}
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) validate() error {
	if len(b.spaces) != Size {
		return fmt.Errorf("board must have exactly %d spaces, got %d", Size, len(b.spaces))
	}
	for _, sp := range b.spaces {
		switch sp.Category {
		case CategoryGo, CategoryJail, CategoryFreeParking, CategoryGoToJail,
			CategoryCommunityChest, CategoryChance:
		case CategoryTax:
			if sp.Price <= 0 {
				return fmt.Errorf("space %d (%s): tax amount must be positive", sp.Index, sp.Name)
			}
		case CategoryProperty:
			if sp.Price <= 0 || sp.HousePrice <= 0 {
				return fmt.Errorf("space %d (%s): property needs price and house price", sp.Index, sp.Name)
			}
			if sp.Group == "" {
				return fmt.Errorf("space %d (%s): property needs a group", sp.Index, sp.Name)
			}
			if len(sp.Rent) != 6 {
				return fmt.Errorf("space %d (%s): rent schedule must have 6 entries, got %d", sp.Index, sp.Name, len(sp.Rent))
			}
		case CategoryRailroad, CategoryUtility:
			if sp.Price <= 0 {
				return fmt.Errorf("space %d (%s): %s needs a price", sp.Index, sp.Name, sp.Category)
			}
			if sp.Group == "" {
				return fmt.Errorf("space %d (%s): %s needs a group", sp.Index, sp.Name, sp.Category)
			}
		default:
			return fmt.Errorf("space %d (%s): unknown category %q", sp.Index, sp.Name, sp.Category)
		}
	}
	if b.spaces[GoIndex].Category != CategoryGo {
		return fmt.Errorf("space %d must be the go space", GoIndex)
	}
	if b.spaces[JailIndex].Category != CategoryJail {
		return fmt.Errorf("space %d must be the jail space", JailIndex)
	}
	// Groups never span categories; a railroad in a property group would
	// corrupt monopoly detection.
	for name, members := range b.groups {
		cat := b.spaces[members[0]].Category
		for _, idx := range members[1:] {
			if b.spaces[idx].Category != cat {
				return fmt.Errorf("group %q mixes categories", name)
			}
		}
	}
	return nil
}

// Space returns the space at idx. idx must be in [0, Size).
func (b *Board) Space(idx int) Space {
	return b.spaces[idx]
}

// Spaces returns the full ordered layout.
func (b *Board) Spaces() []Space {
	out := make([]Space, len(b.spaces))
	copy(out, b.spaces)
	return out
}

// Group returns the indexes of every space sharing the named group, in board
// order. The result must not be mutated.
func (b *Board) Group(name string) []int {
	return b.groups[name]
}
