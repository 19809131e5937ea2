package game

import (
	"math/rand"
	"testing"
)

func TestRoll(t *testing.T) {
	r := Roll{Die1: 3, Die2: 4}
	if r.Sum() != 7 {
		t.Fatalf("sum = %d, want 7", r.Sum())
	}
	if r.IsDouble() {
		t.Fatalf("3+4 is not a double")
	}
	if !(Roll{Die1: 5, Die2: 5}).IsDouble() {
		t.Fatalf("5+5 is a double")
	}
}

func TestDiceRange(t *testing.T) {
	d := dice{rng: rand.New(rand.NewSource(3))}
	for i := 0; i < 1000; i++ {
		r := d.roll()
		if r.Die1 < 1 || r.Die1 > 6 || r.Die2 < 1 || r.Die2 > 6 {
			t.Fatalf("roll %d out of range: %+v", i, r)
		}
	}
}

func TestDiceSeedStable(t *testing.T) {
	d1 := dice{rng: rand.New(rand.NewSource(9))}
	d2 := dice{rng: rand.New(rand.NewSource(9))}
	for i := 0; i < 100; i++ {
		if a, b := d1.roll(), d2.roll(); a != b {
			t.Fatalf("roll %d differs: %+v vs %+v", i, a, b)
		}
	}
}
