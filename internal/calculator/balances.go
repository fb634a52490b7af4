package calculator

import (
	"sort"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// SettleUp computes who owes whom across the unsettled bill splits.
//
// Algorithm:
//   - For each unsettled split: the payer paid +total, each participant owes one share
//   - Aggregate: net_balance = total_paid - total_owed
//   - Transfers: greedy matching of the largest debtor with the largest creditor
//
// Balances are sorted by name so the result is stable across calls.
func SettleUp(splits []models.BillSplit) ([]models.ParticipantBalance, []models.Transfer) {
	balances := make(map[string]*models.ParticipantBalance)
	get := func(name string) *models.ParticipantBalance {
		b, ok := balances[name]
		if !ok {
			b = &models.ParticipantBalance{Name: name}
			balances[name] = b
		}
		return b
	}

	for _, s := range splits {
		if s.IsSettled || s.Payer == "" || len(s.Participants) == 0 {
			continue
		}
		share := PerHeadShare(s)
		get(s.Payer).TotalPaid += s.TotalAmount
		for _, p := range s.Participants {
			get(p).TotalOwed += share
		}
	}

	result := make([]models.ParticipantBalance, 0, len(balances))
	for _, b := range balances {
		b.NetBalance = b.TotalPaid - b.TotalOwed
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	var creditors, debtors []models.ParticipantBalance
	for _, b := range result {
		if b.NetBalance > 0.01 {
			creditors = append(creditors, b)
		} else if b.NetBalance < -0.01 {
			debtors = append(debtors, b)
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].NetBalance > creditors[j].NetBalance })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].NetBalance < debtors[j].NetBalance })

	var transfers []models.Transfer
	i, j := 0, 0
	var owes, owed float64
	if len(debtors) > 0 {
		owes = -debtors[0].NetBalance
	}
	if len(creditors) > 0 {
		owed = creditors[0].NetBalance
	}
	for i < len(debtors) && j < len(creditors) {
		amount := min(owes, owed)
		if amount > 0.01 { // Avoid floating point noise
			transfers = append(transfers, models.Transfer{
				From:   debtors[i].Name,
				To:     creditors[j].Name,
				Amount: amount,
			})
		}
		owes -= amount
		owed -= amount
		if owes < 0.01 {
			if i++; i < len(debtors) {
				owes = -debtors[i].NetBalance
			}
		}
		if owed < 0.01 {
			if j++; j < len(creditors) {
				owed = creditors[j].NetBalance
			}
		}
	}

	return result, transfers
}
