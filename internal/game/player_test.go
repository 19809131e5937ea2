package game

import "testing"

func TestDebitClampsAtZero(t *testing.T) {
	p := newPlayer(0, 100)
	if paid := p.debit(30); paid != 30 || p.Balance != 70 {
		t.Fatalf("paid=%d balance=%d", paid, p.Balance)
	}
	if paid := p.debit(500); paid != 70 || p.Balance != 0 {
		t.Fatalf("overdraw: paid=%d balance=%d", paid, p.Balance)
	}
	if !p.insolvent() {
		t.Fatalf("zero balance should be insolvent")
	}
}

func TestCanAfford(t *testing.T) {
	p := newPlayer(0, 100)
	if !p.canAfford(100) {
		t.Fatalf("exact balance should be affordable")
	}
	if p.canAfford(101) {
		t.Fatalf("101 should not be affordable on 100")
	}
}

func TestRecordRollTripleDouble(t *testing.T) {
	p := newPlayer(0, 1500)

	if p.recordRoll(Roll{1, 1}) {
		t.Fatalf("one double is not a triple")
	}
	if p.recordRoll(Roll{2, 2}) {
		t.Fatalf("two doubles are not a triple")
	}
	if !p.recordRoll(Roll{3, 3}) {
		t.Fatalf("three consecutive doubles must trigger")
	}

	// A non-double resets the streak.
	if p.recordRoll(Roll{1, 2}) {
		t.Fatalf("streak broken by non-double")
	}
	if p.recordRoll(Roll{4, 4}) || p.recordRoll(Roll{5, 5}) {
		t.Fatalf("two doubles after a break are not a triple")
	}
	if !p.recordRoll(Roll{6, 6}) {
		t.Fatalf("streak rebuilt to three doubles must trigger")
	}
}

func TestRecordRollHistoryBounded(t *testing.T) {
	p := newPlayer(0, 1500)
	for i := 0; i < 10; i++ {
		p.recordRoll(Roll{1, 2})
	}
	if len(p.recentRolls) != 3 {
		t.Fatalf("history length %d, want 3", len(p.recentRolls))
	}
}
