// Package advisor talks to the generative model that reads receipts, bank SMS
// and voice commands, forecasts spending and answers free-form questions.
//
// The model is an opaque collaborator. Its answers are suggestions: nothing in
// this package touches ledger state, and a failed call is reported as
// ErrCouldNotParse wrapped in an *ExternalServiceError.
package advisor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// ErrCouldNotParse is returned when the model cannot be reached or its answer
// cannot be read.
var ErrCouldNotParse = errors.New("could not parse")

// FallbackAnswer is what Ask returns when the model is unavailable.
const FallbackAnswer = "দুঃখিত, আমি এই মুহূর্তে উত্তর দিতে পারছি না। আপনার ইন্টারনেট কানেকশন চেক করুন।"

// ExternalServiceError records which advisor operation failed and why.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("advisor %s failed: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is reports every advisor failure as ErrCouldNotParse.
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrCouldNotParse
}

// ReceiptScan is what the model read from a receipt photo.
type ReceiptScan struct {
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

// Transaction turns the scan into an expense suggestion.
func (r ReceiptScan) Transaction(today string) models.Transaction {
	return calculator.TransactionWithDefaults(models.Transaction{
		Amount:   r.Amount,
		Type:     models.Expense,
		Category: r.Category,
		Date:     r.Date,
		Note:     r.Note,
	}, today)
}

// SMSParse is what the model read from a bank or mobile-wallet SMS.
type SMSParse struct {
	Amount   float64                `json:"amount"`
	Type     models.TransactionType `json:"type"`
	Provider string                 `json:"provider"`
	Note     string                 `json:"note"`
	Date     string                 `json:"date"`
}

// Transaction turns the SMS into a suggestion paid through the provider.
func (s SMSParse) Transaction(today string) models.Transaction {
	return calculator.TransactionWithDefaults(models.Transaction{
		Amount:      s.Amount,
		Type:        s.Type,
		Category:    "Others",
		Date:        s.Date,
		PaymentMode: paymentMode(s.Provider),
		Note:        s.Note,
	}, today)
}

// VoiceCommand is a spoken transaction, already transcribed to text.
type VoiceCommand struct {
	Amount   float64                `json:"amount"`
	Category string                 `json:"category"`
	Note     string                 `json:"note"`
	Type     models.TransactionType `json:"type"`
}

// Transaction turns the command into a suggestion dated today.
func (v VoiceCommand) Transaction(today string) models.Transaction {
	return calculator.TransactionWithDefaults(models.Transaction{
		Amount:   v.Amount,
		Type:     v.Type,
		Category: v.Category,
		Note:     v.Note,
	}, today)
}

// Trend is the predicted direction of a spending category.
type Trend string

const (
	TrendUp     Trend = "Up"
	TrendDown   Trend = "Down"
	TrendStable Trend = "Stable"
)

// CategoryForecast is the prediction for one category.
type CategoryForecast struct {
	Category        string  `json:"category"`
	PredictedAmount float64 `json:"predictedAmount"`
	Reason          string  `json:"reason"`
	Trend           Trend   `json:"trend"`
}

// Forecast is next month's predicted spending.
type Forecast struct {
	NextMonthTotal    float64            `json:"nextMonthTotal"`
	ConfidenceScore   float64            `json:"confidenceScore"`
	Insights          string             `json:"insights"`
	CategoryBreakdown []CategoryForecast `json:"categoryBreakdown"`
}

// Turn is one message of an advisor conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// paymentMode maps an SMS sender to a known payment mode.
func paymentMode(provider string) models.PaymentMode {
	p := strings.ToLower(provider)
	switch {
	case strings.Contains(p, "bkash"):
		return models.PaymentBkash
	case strings.Contains(p, "nagad"):
		return models.PaymentNagad
	case strings.Contains(p, "rocket"):
		return models.PaymentRocket
	case strings.Contains(p, "card"), strings.Contains(p, "visa"), strings.Contains(p, "master"):
		return models.PaymentCard
	case p == "":
		return models.PaymentCash
	default:
		return models.PaymentBank
	}
}
