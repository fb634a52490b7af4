// Package models defines the core domain records for FinTrack.
//
// # Shared-cost records
//
// The allocation engine works over these records:
//   - Member, BazaarEntry, MealEntry: a mess (shared household) and its ledger
//   - BillSplit: an even split of a one-off shared expense
//   - Loan: a fixed-EMI loan with a paid-months counter
//
// # Wallet records
//
//   - Transaction: an income or expense entry
//   - ShoppingItem: a list item that becomes an expense once bought
//   - Debt: money lent to or borrowed from someone
//   - Budget: a monthly spending limit for one category
//   - Profile: owner settings, including the PIN lock
//
// # Design Principles
//
//  1. **Plain values**: records are copied, never shared by pointer between collections
//  2. **IDs, not pointers**: relationships are ID strings (BazaarEntry.MemberID)
//  3. **Stable JSON**: tags match the field names of the browser-storage form,
//     so persisted collections and backup files stay interchangeable
//  4. **Dates as strings**: calendar days are "YYYY-MM-DD", months are "YYYY-MM"
package models

// DateLayout is the calendar-day layout used by every dated record.
const DateLayout = "2006-01-02"

// MonthLayout is the layout of a budget month key.
const MonthLayout = "2006-01"
