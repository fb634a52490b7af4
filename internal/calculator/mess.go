package calculator

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// NewMember builds a member with a fresh ID.
func NewMember(name string, deposit float64) (models.Member, error) {
	m := models.Member{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(name),
		Deposit: deposit,
	}
	if err := ValidateMember(m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// ValidateMember checks a member record.
func ValidateMember(m models.Member) error {
	if strings.TrimSpace(m.Name) == "" {
		return models.Invalid("name", "must not be empty")
	}
	return nonNegative("deposit", m.Deposit)
}

// NewBazaarEntry builds a purchase record for memberID.
func NewBazaarEntry(memberID string, amount float64, item, date string) (models.BazaarEntry, error) {
	e := models.BazaarEntry{
		ID:       uuid.New().String(),
		MemberID: memberID,
		Amount:   amount,
		Item:     strings.TrimSpace(item),
		Date:     date,
	}
	if err := ValidateBazaarEntry(e); err != nil {
		return models.BazaarEntry{}, err
	}
	return e, nil
}

// ValidateBazaarEntry checks a purchase record. The member reference is not
// resolved here; dangling references are legal history.
func ValidateBazaarEntry(e models.BazaarEntry) error {
	if e.MemberID == "" {
		return models.Invalid("memberId", "must not be empty")
	}
	if err := positive("amount", e.Amount); err != nil {
		return err
	}
	return validDate("date", e.Date)
}

// NewMealEntry builds a meal record for memberID.
func NewMealEntry(memberID string, count float64, date string) (models.MealEntry, error) {
	e := models.MealEntry{
		ID:       uuid.New().String(),
		MemberID: memberID,
		Count:    count,
		Date:     date,
	}
	if err := ValidateMealEntry(e); err != nil {
		return models.MealEntry{}, err
	}
	return e, nil
}

// ValidateMealEntry checks a meal record.
// Count must be a non-negative multiple of 0.5. Like every amount it is
// capped at MaxAmount; there is no per-day limit.
func ValidateMealEntry(e models.MealEntry) error {
	if e.MemberID == "" {
		return models.Invalid("memberId", "must not be empty")
	}
	if err := nonNegative("count", e.Count); err != nil {
		return err
	}
	if math.Mod(e.Count*2, 1) != 0 {
		return models.Invalid("count", "must be a multiple of 0.5")
	}
	return validDate("date", e.Date)
}

// MealRate is the cost of one meal. Zero meals give a zero rate.
func MealRate(totalBazaarSpend, totalMealCount float64) float64 {
	if totalMealCount > 0 {
		return totalBazaarSpend / totalMealCount
	}
	return 0
}

// MealLedger derives the mess summary from the full collections.
//
// Algorithm (recomputed from scratch on every call):
//  1. totalBazaarSpend = sum of all bazaar amounts
//  2. totalMealCount = sum of all meal counts
//  3. mealRate = totalBazaarSpend / totalMealCount (0 when there are no meals)
//  4. per member: allocatedCost = personalMeals × mealRate,
//     netBalance = deposit - allocatedCost
//
// Entries whose member no longer exists count toward the totals but are
// attributed to nobody. No rounding reconciliation is done between the sum
// of allocated costs and totalBazaarSpend.
func MealLedger(members []models.Member, bazaar []models.BazaarEntry, meals []models.MealEntry) models.MessSummary {
	personalBazaar := make(map[string]float64)
	personalMeals := make(map[string]float64)

	var summary models.MessSummary
	for _, b := range bazaar {
		summary.TotalBazaarSpend += b.Amount
		personalBazaar[b.MemberID] += b.Amount
	}
	for _, m := range meals {
		summary.TotalMealCount += m.Count
		personalMeals[m.MemberID] += m.Count
	}
	summary.MealRate = MealRate(summary.TotalBazaarSpend, summary.TotalMealCount)

	summary.Members = make([]models.MemberStat, 0, len(members))
	for _, m := range members {
		cost := personalMeals[m.ID] * summary.MealRate
		summary.Members = append(summary.Members, models.MemberStat{
			MemberID:      m.ID,
			Name:          m.Name,
			Deposit:       m.Deposit,
			TotalMeals:    personalMeals[m.ID],
			TotalBazaar:   personalBazaar[m.ID],
			AllocatedCost: cost,
			NetBalance:    m.Deposit - cost,
		})
	}
	return summary
}
