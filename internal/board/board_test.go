package board

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBoard(t *testing.T) {
	b := Default()
	if got := len(b.Spaces()); got != Size {
		t.Fatalf("default board has %d spaces, want %d", got, Size)
	}
	if b.Space(GoIndex).Category != CategoryGo {
		t.Fatalf("space %d is %q, want go", GoIndex, b.Space(GoIndex).Category)
	}
	if b.Space(JailIndex).Category != CategoryJail {
		t.Fatalf("space %d is %q, want jail", JailIndex, b.Space(JailIndex).Category)
	}
	anchors := map[int]string{
		MediterraneanAvenueIndex:  "Mediterranean Avenue",
		StCharlesPlaceIndex:       "St. Charles Place",
		PennsylvaniaRailroadIndex: "Pennsylvania Railroad",
		IllinoisAvenueIndex:       "Illinois Avenue",
		BoardwalkIndex:            "Boardwalk",
	}
	for idx, name := range anchors {
		if got := b.Space(idx).Name; got != name {
			t.Fatalf("space %d is %q, want %q", idx, got, name)
		}
	}
}

func TestDefaultBoardGroups(t *testing.T) {
	b := Default()
	tests := []struct {
		group string
		size  int
	}{
		{"brown", 2},
		{"lightblue", 3},
		{"pink", 3},
		{"orange", 3},
		{"red", 3},
		{"yellow", 3},
		{"green", 3},
		{"darkblue", 2},
		{"railroad", 4},
		{"utility", 2},
	}
	for _, tc := range tests {
		if got := len(b.Group(tc.group)); got != tc.size {
			t.Fatalf("group %q has %d members, want %d", tc.group, got, tc.size)
		}
	}
}

func TestDefaultBoardRentSchedules(t *testing.T) {
	b := Default()
	for _, sp := range b.Spaces() {
		if sp.Category != CategoryProperty {
			continue
		}
		if len(sp.Rent) != 6 {
			t.Fatalf("%s: rent schedule has %d entries, want 6", sp.Name, len(sp.Rent))
		}
		for i := 1; i < len(sp.Rent); i++ {
			if sp.Rent[i] <= sp.Rent[i-1] {
				t.Fatalf("%s: rent schedule not strictly increasing at %d", sp.Name, i)
			}
		}
	}
}

func TestParseRejectsBadBoards(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "nope"},
		{"too short", `[{"name":"Go","category":"go"}]`},
		{"unknown category", boardWithSpace(`{"name":"X","category":"warp"}`)},
		{"property missing rent", boardWithSpace(`{"name":"X","category":"property","group":"brown","price":60,"house_price":50}`)},
		{"property missing group", boardWithSpace(`{"name":"X","category":"property","price":60,"rent":[1,2,3,4,5,6],"house_price":50}`)},
		{"tax without amount", boardWithSpace(`{"name":"X","category":"tax"}`)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.raw)); err == nil {
				t.Fatalf("expected parse to fail")
			}
		})
	}
}

// boardWithSpace builds a full 40-space document with one space replaced, so
// validation failures come from the space under test and not the length check.
func boardWithSpace(space string) string {
	doc := "[" + space
	for i := 1; i < Size; i++ {
		switch i {
		case JailIndex:
			doc += `,{"name":"Jail","category":"jail"}`
		default:
			doc += `,{"name":"Filler","category":"freeparking"}`
		}
	}
	return doc + "]"
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, usBoard, 0o600); err != nil {
		t.Fatalf("write board: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("load board: %v", err)
	}
	if b.Space(BoardwalkIndex).Price != 400 {
		t.Fatalf("boardwalk price = %d, want 400", b.Space(BoardwalkIndex).Price)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected load of missing file to fail")
	}
}
