// Package backup exports FinTrack state as one JSON document and imports it back.
//
// Import is a validated, per-collection deserialization. Each collection is
// decoded on its own; each record is checked and either defaulted or skipped
// with an Issue. Collections missing from the document keep their current
// value, so an import merges into the existing state.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// Version is the document format written by Export.
const Version = 1

// documentKeys maps each collection to its key in a backup document.
var documentKeys = map[ledger.Collection]string{
	ledger.Profile:      "profile",
	ledger.Transactions: "transactions",
	ledger.Budgets:      "budgets",
	ledger.Debts:        "debts",
	ledger.Loans:        "loans",
	ledger.Shopping:     "shoppingItems",
	ledger.Splits:       "billSplits",
	ledger.Members:      "messMembers",
	ledger.Bazaar:       "messBazaars",
	ledger.Meals:        "messMeals",
	ledger.Goals:        "goals",
}

// ExtraKeys are document keys whose arrays are carried through import,
// export and persistence without being interpreted.
var ExtraKeys = []string{"categories", "incomeSources", "investments", "recurring", "subs"}

// Issue describes one record that was skipped during import.
type Issue struct {
	Collection string `json:"collection"`
	Index      int    `json:"index"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
}

// Result is the outcome of Import.
type Result struct {
	Snapshot ledger.Snapshot

	// Imported counts the accepted records per document key.
	Imported map[string]int

	// Issues lists every skipped record.
	Issues []Issue

	// Ignored lists document keys FinTrack neither stores nor carries.
	Ignored []string

	// Changed lists the collections present in the document.
	Changed []ledger.Collection
}

// Export writes snap as an indented backup document.
// The PIN hash is never exported.
func Export(snap ledger.Snapshot, now time.Time) ([]byte, error) {
	doc := map[string]any{
		"version":    Version,
		"exportedAt": now.UTC().Format(time.RFC3339),
	}
	for c, key := range documentKeys {
		doc[key] = snap.Payload(c)
	}
	doc["profile"] = snap.Profile.Public()
	for _, key := range ExtraKeys {
		if raw, ok := snap.Extras[key]; ok {
			doc[key] = raw
		} else {
			doc[key] = []any{}
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Import merges a backup document into base.
// It fails only when the document itself is not a JSON object or a present
// collection is not a JSON array; bad records are reported, not fatal.
func Import(data []byte, base ledger.Snapshot, now time.Time) (*Result, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &models.ValidationError{Field: "document", Message: "must be a JSON object"}
	}

	result := &Result{Snapshot: base, Imported: make(map[string]int)}
	known := map[string]bool{"version": true, "exportedAt": true}
	today := now.Format(models.DateLayout)

	for _, c := range ledger.AllCollections {
		key, ok := documentKeys[c]
		if !ok {
			continue
		}
		known[key] = true
		raw, ok := doc[key]
		if !ok || isNull(raw) {
			continue
		}
		n, issues, err := decodeInto(&result.Snapshot, c, key, raw, today, true)
		if err != nil {
			return nil, err
		}
		result.Imported[key] = n
		result.Issues = append(result.Issues, issues...)
		result.Changed = append(result.Changed, c)
	}

	extras, changed, err := importExtras(doc, base.Extras, result.Imported)
	if err != nil {
		return nil, err
	}
	if changed {
		result.Snapshot.Extras = extras
		result.Changed = append(result.Changed, ledger.Extras)
	}
	for _, key := range ExtraKeys {
		known[key] = true
	}

	for key := range doc {
		if !known[key] {
			result.Ignored = append(result.Ignored, key)
		}
	}
	sort.Strings(result.Ignored)
	return result, nil
}

// importExtras merges the extra arrays present in doc into a copy of base.
func importExtras(doc map[string]json.RawMessage, base map[string]json.RawMessage, imported map[string]int) (map[string]json.RawMessage, bool, error) {
	extras := make(map[string]json.RawMessage, len(ExtraKeys))
	for key, raw := range base {
		extras[key] = raw
	}
	changed := false
	for _, key := range ExtraKeys {
		raw, ok := doc[key]
		if !ok || isNull(raw) {
			continue
		}
		n, err := opaqueArray(key, raw)
		if err != nil {
			return nil, false, err
		}
		extras[key] = raw
		imported[key] = n
		changed = true
	}
	return extras, changed, nil
}

// opaqueArray checks that raw is a JSON array and counts its elements.
func opaqueArray(key string, raw json.RawMessage) (int, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return 0, &models.ValidationError{Field: key, Message: "must be a JSON array"}
	}
	return len(elems), nil
}

// DecodeCollection decodes one stored collection payload into snap.
// It is used when restoring persisted state at startup.
func DecodeCollection(snap *ledger.Snapshot, c ledger.Collection, raw []byte, today string) ([]Issue, error) {
	if len(raw) == 0 || isNull(raw) {
		return nil, nil
	}
	_, issues, err := decodeInto(snap, c, string(c), raw, today, false)
	return issues, err
}

// decodeInto replaces collection c of snap with the records decoded from raw.
// keepPIN preserves the current PIN lock when a profile is decoded.
func decodeInto(snap *ledger.Snapshot, c ledger.Collection, key string, raw json.RawMessage, today string, keepPIN bool) (int, []Issue, error) {
	var (
		n      int
		issues []Issue
		err    error
	)
	switch c {
	case ledger.Profile:
		var p models.Profile
		if jsonErr := json.Unmarshal(raw, &p); jsonErr != nil {
			return 0, nil, &models.ValidationError{Field: key, Message: "must be a JSON object"}
		}
		if vErr := calculator.ValidateProfile(p); vErr != nil {
			issues = append(issues, toIssue(key, 0, vErr))
			return 0, issues, nil
		}
		if keepPIN {
			p.IsPINEnabled = snap.Profile.IsPINEnabled
			p.PINHash = snap.Profile.PINHash
		}
		snap.Profile = p
		return 1, nil, nil
	case ledger.Members:
		snap.Members, issues, err = decodeRecords(key, raw, func(m *models.Member) error {
			defaultID(&m.ID)
			return calculator.ValidateMember(*m)
		})
		n = len(snap.Members)
	case ledger.Bazaar:
		snap.Bazaar, issues, err = decodeRecords(key, raw, func(e *models.BazaarEntry) error {
			defaultID(&e.ID)
			defaultDate(&e.Date, today)
			return calculator.ValidateBazaarEntry(*e)
		})
		n = len(snap.Bazaar)
	case ledger.Meals:
		snap.Meals, issues, err = decodeRecords(key, raw, func(e *models.MealEntry) error {
			defaultID(&e.ID)
			defaultDate(&e.Date, today)
			return calculator.ValidateMealEntry(*e)
		})
		n = len(snap.Meals)
	case ledger.Splits:
		snap.Splits, issues, err = decodeRecords(key, raw, func(s *models.BillSplit) error {
			defaultID(&s.ID)
			defaultDate(&s.Date, today)
			if s.Participants == nil {
				s.Participants = []string{}
			}
			if s.Payer == "" && len(s.Participants) > 0 {
				s.Payer = s.Participants[0]
			}
			return calculator.ValidateBillSplit(*s)
		})
		n = len(snap.Splits)
	case ledger.Loans:
		snap.Loans, issues, err = decodeRecords(key, raw, func(l *models.Loan) error {
			defaultID(&l.ID)
			defaultDate(&l.StartDate, today)
			if err := calculator.ValidateLoan(*l); err != nil {
				return err
			}
			if l.EMIAmount <= 0 || math.IsNaN(l.EMIAmount) || math.IsInf(l.EMIAmount, 0) {
				l.EMIAmount = calculator.EMI(l.TotalAmount, l.InterestRate, l.DurationMonths)
			}
			l.IsCompleted = l.PaidMonths == l.DurationMonths
			return nil
		})
		n = len(snap.Loans)
	case ledger.Transactions:
		snap.Transactions, issues, err = decodeRecords(key, raw, func(t *models.Transaction) error {
			defaultID(&t.ID)
			normalizeDate(&t.Date)
			*t = calculator.TransactionWithDefaults(*t, today)
			return calculator.ValidateTransaction(*t)
		})
		n = len(snap.Transactions)
	case ledger.Shopping:
		snap.Shopping, issues, err = decodeRecords(key, raw, func(s *models.ShoppingItem) error {
			defaultID(&s.ID)
			return calculator.ValidateShoppingItem(*s)
		})
		n = len(snap.Shopping)
	case ledger.Debts:
		snap.Debts, issues, err = decodeRecords(key, raw, func(d *models.Debt) error {
			defaultID(&d.ID)
			defaultDate(&d.Date, today)
			normalizeDate(&d.DueDate)
			return calculator.ValidateDebt(*d)
		})
		n = len(snap.Debts)
	case ledger.Budgets:
		snap.Budgets, issues, err = decodeRecords(key, raw, func(b *models.Budget) error {
			return calculator.ValidateBudget(*b)
		})
		n = len(snap.Budgets)
	case ledger.Goals:
		snap.Goals, issues, err = decodeRecords(key, raw, func(g *models.Goal) error {
			defaultID(&g.ID)
			normalizeDate(&g.Deadline)
			if g.Icon == "" {
				g.Icon = calculator.DefaultGoalIcon
			}
			return calculator.ValidateGoal(*g)
		})
		n = len(snap.Goals)
	case ledger.Extras:
		var stored map[string]json.RawMessage
		if jsonErr := json.Unmarshal(raw, &stored); jsonErr != nil {
			return 0, nil, &models.ValidationError{Field: key, Message: "must be a JSON object"}
		}
		snap.Extras = make(map[string]json.RawMessage, len(stored))
		for k, v := range stored {
			if _, aErr := opaqueArray(k, v); aErr != nil {
				issues = append(issues, toIssue(key, 0, aErr))
				continue
			}
			snap.Extras[k] = v
		}
		n = len(snap.Extras)
	default:
		return 0, nil, fmt.Errorf("unknown collection %q", c)
	}
	return n, issues, err
}

// decodeRecords decodes a JSON array one element at a time. fix may default
// fields in place; a non-nil error from it rejects the record.
func decodeRecords[T any](key string, raw json.RawMessage, fix func(*T) error) ([]T, []Issue, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, &models.ValidationError{Field: key, Message: "must be a JSON array"}
	}

	records := make([]T, 0, len(elems))
	var issues []Issue
	for i, elem := range elems {
		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			issues = append(issues, Issue{Collection: key, Index: i, Message: err.Error()})
			continue
		}
		if err := fix(&rec); err != nil {
			issues = append(issues, toIssue(key, i, err))
			continue
		}
		records = append(records, rec)
	}
	return records, issues, nil
}

func toIssue(key string, index int, err error) Issue {
	issue := Issue{Collection: key, Index: index, Message: err.Error()}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		issue.Field = verr.Field
		issue.Message = verr.Message
	}
	return issue
}

func defaultID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

// defaultDate normalizes *date and fills in today when it is empty.
func defaultDate(date *string, today string) {
	normalizeDate(date)
	if *date == "" {
		*date = today
	}
}

// normalizeDate turns an RFC 3339 timestamp, as written by
// Date.prototype.toISOString, into its calendar day. Other values are left
// for validation.
func normalizeDate(date *string) {
	if len(*date) <= len(models.DateLayout) {
		return
	}
	if t, err := time.Parse(time.RFC3339, *date); err == nil {
		*date = t.Format(models.DateLayout)
	}
}

func isNull(raw []byte) bool {
	return string(raw) == "null"
}
