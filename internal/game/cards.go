package game

import (
	"fmt"
	"math/rand"
)

// Card identifies one entry in a deck's fixed catalogue. The set is closed:
// drawing a card the engine does not recognize is a data bug and panics.
type Card int

// Chance catalogue.
const (
	ChanceAdvanceToGo Card = iota
	ChanceGoToJail
	ChanceAdvanceToStCharles
	ChanceAdvanceToPennsylvaniaRailroad
	ChanceAdvanceToIllinois
	ChanceAdvanceToBoardwalk
	ChanceGoBackThree
	ChanceGeneralRepairs
	ChanceStreetRepairs
	ChanceSchoolFees
	ChanceDrunkFine
	ChanceSpeedingFine
	ChanceLoanMatures
	ChanceCrosswordPrize
	ChanceBankDividend
	ChanceJailFree
)

// Community chest catalogue.
const (
	ChestAdvanceToGo Card = iota + 100
	ChestBackToMediterranean
	ChestGoToJail
	ChestHospitalFee
	ChestDoctorsFee
	ChestInsurancePremium
	ChestBankError
	ChestAnnuityMatures
	ChestInheritance
	ChestStockSale
	ChestShareInterest
	ChestTaxRefund
	ChestBeautyContest
	ChestBirthday
	ChestJailFree
	ChestFine
)

var cardNames = map[Card]string{
	ChanceAdvanceToGo:                   "advance to go",
	ChanceGoToJail:                      "go to jail",
	ChanceAdvanceToStCharles:            "advance to st. charles place",
	ChanceAdvanceToPennsylvaniaRailroad: "trip to pennsylvania railroad",
	ChanceAdvanceToIllinois:             "advance to illinois avenue",
	ChanceAdvanceToBoardwalk:            "advance to boardwalk",
	ChanceGoBackThree:                   "go back three spaces",
	ChanceGeneralRepairs:                "general repairs",
	ChanceStreetRepairs:                 "street repairs",
	ChanceSchoolFees:                    "school fees",
	ChanceDrunkFine:                     "drunk in charge fine",
	ChanceSpeedingFine:                  "speeding fine",
	ChanceLoanMatures:                   "building loan matures",
	ChanceCrosswordPrize:                "crossword competition prize",
	ChanceBankDividend:                  "bank dividend",
	ChanceJailFree:                      "get out of jail free",
	ChestAdvanceToGo:                    "advance to go",
	ChestBackToMediterranean:            "go back to mediterranean avenue",
	ChestGoToJail:                       "go to jail",
	ChestHospitalFee:                    "hospital fee",
	ChestDoctorsFee:                     "doctor's fee",
	ChestInsurancePremium:               "insurance premium",
	ChestBankError:                      "bank error in your favour",
	ChestAnnuityMatures:                 "annuity matures",
	ChestInheritance:                    "inheritance",
	ChestStockSale:                      "sale of stock",
	ChestShareInterest:                  "preference share interest",
	ChestTaxRefund:                      "income tax refund",
	ChestBeautyContest:                  "beauty contest prize",
	ChestBirthday:                       "birthday collection",
	ChestJailFree:                       "get out of jail free",
	ChestFine:                           "ten unit fine",
}

func (c Card) String() string {
	if name, ok := cardNames[c]; ok {
		return name
	}
	return fmt.Sprintf("card(%d)", int(c))
}

func chanceCatalogue() []Card {
	return []Card{
		ChanceAdvanceToGo,
		ChanceGoToJail,
		ChanceAdvanceToStCharles,
		ChanceAdvanceToPennsylvaniaRailroad,
		ChanceAdvanceToIllinois,
		ChanceAdvanceToBoardwalk,
		ChanceGoBackThree,
		ChanceGeneralRepairs,
		ChanceStreetRepairs,
		ChanceSchoolFees,
		ChanceDrunkFine,
		ChanceSpeedingFine,
		ChanceLoanMatures,
		ChanceCrosswordPrize,
		ChanceBankDividend,
		ChanceJailFree,
	}
}

func chestCatalogue() []Card {
	return []Card{
		ChestAdvanceToGo,
		ChestBackToMediterranean,
		ChestGoToJail,
		ChestHospitalFee,
		ChestDoctorsFee,
		ChestInsurancePremium,
		ChestBankError,
		ChestAnnuityMatures,
		ChestInheritance,
		ChestStockSale,
		ChestShareInterest,
		ChestTaxRefund,
		ChestBeautyContest,
		ChestBirthday,
		ChestJailFree,
		ChestFine,
	}
}

// Deck is a shuffled, cyclically consumed card sequence. Cards are never
// removed: a drawn card returns to the bottom of the cycle, jail-free cards
// included, so the order fixed by the initial shuffle repeats forever.
type Deck struct {
	cards  []Card
	cursor int
}

// NewDeck copies and shuffles the catalogue using the shared random stream.
func NewDeck(catalogue []Card, rng *rand.Rand) *Deck {
	cards := make([]Card, len(catalogue))
	copy(cards, catalogue)
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &Deck{cards: cards}
}

// Draw returns the card at the cursor and advances it cyclically.
func (d *Deck) Draw() Card {
	c := d.cards[d.cursor]
	d.cursor = (d.cursor + 1) % len(d.cards)
	return c
}
