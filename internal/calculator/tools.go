package calculator

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

// MockRates are fixed BDT prices of one unit of each supported currency.
// Rates are never fetched.
var MockRates = map[string]decimal.Decimal{
	"BDT": decimal.NewFromInt(1),
	"USD": decimal.RequireFromString("121.50"),
	"EUR": decimal.RequireFromString("132.20"),
	"GBP": decimal.RequireFromString("154.80"),
}

// Currencies lists the supported currency codes in sorted order.
func Currencies() []string {
	codes := make([]string, 0, len(MockRates))
	for c := range MockRates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Convert changes amount from one currency to another using MockRates.
// The result is rounded to two decimal places.
func Convert(amount float64, from, to string) (float64, error) {
	if err := nonNegative("amount", amount); err != nil {
		return 0, err
	}
	fromRate, ok := MockRates[strings.ToUpper(from)]
	if !ok {
		return 0, models.Invalid("from", "unsupported currency %q", from)
	}
	toRate, ok := MockRates[strings.ToUpper(to)]
	if !ok {
		return 0, models.Invalid("to", "unsupported currency %q", to)
	}
	return decimal.NewFromFloat(amount).Mul(fromRate).Div(toRate).Round(2).InexactFloat64(), nil
}

// TaxSlab is one band of the progressive income-tax schedule.
// A zero Limit means the band is unbounded.
type TaxSlab struct {
	Limit decimal.Decimal
	Rate  decimal.Decimal
}

// Bangladesh individual income tax, 2024-25 assessment year.
var (
	MaleTaxThreshold   = decimal.NewFromInt(350000)
	FemaleTaxThreshold = decimal.NewFromInt(400000)

	TaxSlabs = []TaxSlab{
		{Limit: decimal.NewFromInt(100000), Rate: decimal.RequireFromString("0.05")},
		{Limit: decimal.NewFromInt(300000), Rate: decimal.RequireFromString("0.10")},
		{Limit: decimal.NewFromInt(400000), Rate: decimal.RequireFromString("0.15")},
		{Limit: decimal.NewFromInt(500000), Rate: decimal.RequireFromString("0.20")},
		{Rate: decimal.RequireFromString("0.25")},
	}
)

// SlabTax is the tax charged inside one slab.
type SlabTax struct {
	Rate    float64 `json:"rate"`
	Taxable float64 `json:"taxable"`
	Tax     float64 `json:"tax"`
}

// TaxBreakdown is the result of IncomeTax.
type TaxBreakdown struct {
	Income    float64   `json:"income"`
	Threshold float64   `json:"threshold"`
	Taxable   float64   `json:"taxable"`
	Tax       float64   `json:"tax"`
	Slabs     []SlabTax `json:"slabs"`
}

// IncomeTax applies the progressive schedule to annual income above the
// tax-free threshold. Income at or below the threshold owes nothing.
func IncomeTax(annualIncome float64, female bool) (TaxBreakdown, error) {
	if err := nonNegative("income", annualIncome); err != nil {
		return TaxBreakdown{}, err
	}
	threshold := MaleTaxThreshold
	if female {
		threshold = FemaleTaxThreshold
	}

	income := decimal.NewFromFloat(annualIncome)
	remaining := income.Sub(threshold)
	result := TaxBreakdown{
		Income:    annualIncome,
		Threshold: threshold.InexactFloat64(),
		Slabs:     []SlabTax{},
	}
	if !remaining.IsPositive() {
		return result, nil
	}
	result.Taxable = remaining.InexactFloat64()

	total := decimal.Zero
	for _, slab := range TaxSlabs {
		amount := remaining
		if !slab.Limit.IsZero() {
			amount = decimal.Min(remaining, slab.Limit)
		}
		tax := amount.Mul(slab.Rate)
		total = total.Add(tax)
		result.Slabs = append(result.Slabs, SlabTax{
			Rate:    slab.Rate.InexactFloat64(),
			Taxable: amount.InexactFloat64(),
			Tax:     tax.Round(2).InexactFloat64(),
		})
		remaining = remaining.Sub(amount)
		if !remaining.IsPositive() {
			break
		}
	}
	result.Tax = total.Round(2).InexactFloat64()
	return result, nil
}

// ZakatRate is the 2.5% due on zakatable wealth.
var ZakatRate = decimal.RequireFromString("0.025")

// ZakatResult is the result of Zakat.
type ZakatResult struct {
	Wealth float64 `json:"wealth"`
	Zakat  float64 `json:"zakat"`
}

// Zakat is 2.5% of cash plus assets, gold and silver.
// Cash may be negative when expenses exceed income; negative wealth owes nothing.
func Zakat(cash, assets, gold, silver float64) (ZakatResult, error) {
	holdings := []struct {
		field string
		value float64
	}{{"assets", assets}, {"gold", gold}, {"silver", silver}}
	for _, h := range holdings {
		if err := nonNegative(h.field, h.value); err != nil {
			return ZakatResult{}, err
		}
	}
	if !finite(cash) {
		return ZakatResult{}, models.Invalid("cash", "must be a finite amount")
	}
	wealth := decimal.NewFromFloat(cash).
		Add(decimal.NewFromFloat(assets)).
		Add(decimal.NewFromFloat(gold)).
		Add(decimal.NewFromFloat(silver))
	result := ZakatResult{Wealth: wealth.Round(2).InexactFloat64()}
	if wealth.IsPositive() {
		result.Zakat = wealth.Mul(ZakatRate).Round(2).InexactFloat64()
	}
	return result, nil
}

// Round2 rounds an amount to two decimal places for display.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
