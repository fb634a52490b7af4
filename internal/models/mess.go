package models

// Member is one person sharing a mess.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Deposit is the money the member put into the common pool.
	// It is set at creation and not topped up afterwards.
	Deposit float64 `json:"deposit"`
}

// BazaarEntry records one grocery purchase made by a member.
//
// MemberID may point at a member that has since been removed. Such entries
// still count toward the mess totals but are attributed to nobody.
type BazaarEntry struct {
	ID       string  `json:"id"`
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
	Item     string  `json:"item"`
	Date     string  `json:"date"`
}

// MealEntry records how many meals a member ate on one day.
// Count is a non-negative multiple of 0.5.
type MealEntry struct {
	ID       string  `json:"id"`
	MemberID string  `json:"memberId"`
	Count    float64 `json:"count"`
	Date     string  `json:"date"`
}

// MemberStat is the derived accounting view of one member.
type MemberStat struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Deposit  float64 `json:"deposit"`

	// TotalMeals is the sum of the member's meal counts.
	TotalMeals float64 `json:"totalMeals"`

	// TotalBazaar is what the member spent on groceries. Informational only,
	// it does not enter the balance.
	TotalBazaar float64 `json:"totalBazaar"`

	// AllocatedCost is TotalMeals × meal rate.
	AllocatedCost float64 `json:"allocatedCost"`

	// NetBalance is Deposit - AllocatedCost.
	// Positive = the mess owes the member, Negative = the member owes the mess.
	NetBalance float64 `json:"netBalance"`
}

// MessSummary is the full derived view of a mess.
type MessSummary struct {
	TotalBazaarSpend float64      `json:"totalBazaarSpend"`
	TotalMealCount   float64      `json:"totalMealCount"`
	MealRate         float64      `json:"mealRate"`
	Members          []MemberStat `json:"members"`
}
