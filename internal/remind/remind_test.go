package remind

import (
	"context"
	"errors"
	"math"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/jordan-wright/email"

	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

var fixedDay = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func sampleSnapshot() ledger.Snapshot {
	return ledger.Snapshot{
		Loans: []models.Loan{
			{ID: "l1", Title: "Bike", DurationMonths: 12, PaidMonths: 3, EMIAmount: 8884.88},
			{ID: "l2", Title: "Phone", DurationMonths: 6, PaidMonths: 6, EMIAmount: 2000, IsCompleted: true},
		},
		Splits: []models.BillSplit{
			{ID: "s1", Title: "Dinner", TotalAmount: 900, Participants: []string{"A", "B", "C"}, Payer: "A"},
			{ID: "s2", Title: "Cab", TotalAmount: 300, Participants: []string{"A", "B"}, Payer: "B", IsSettled: true},
		},
		Debts: []models.Debt{
			{ID: "d1", PersonName: "Karim", Amount: 500, Type: models.Lent, DueDate: "2024-06-10"},
			{ID: "d2", PersonName: "Rahim", Amount: 700, Type: models.Borrowed, DueDate: "2024-07-01"},
			{ID: "d3", PersonName: "Jamal", Amount: 100, Type: models.Lent, DueDate: "2024-06-01", IsSettled: true},
			{ID: "d4", PersonName: "Sadia", Amount: 250, Type: models.Borrowed},
		},
		Shopping: []models.ShoppingItem{
			{ID: "i1", Name: "Rice", EstimatedPrice: 800},
			{ID: "i2", Name: "Oil", EstimatedPrice: 200, IsDone: true},
		},
	}
}

func TestBuild(t *testing.T) {
	d := Build(sampleSnapshot(), "2024-06-10")

	if len(d.ActiveLoans) != 1 || d.ActiveLoans[0].ID != "l1" {
		t.Errorf("active loans = %+v", d.ActiveLoans)
	}
	if math.Abs(d.MonthlyEMI-8884.88) > 0.001 {
		t.Errorf("monthly EMI = %v", d.MonthlyEMI)
	}
	if len(d.UnsettledSplits) != 1 || d.UnsettledSplits[0].ID != "s1" {
		t.Errorf("unsettled splits = %+v", d.UnsettledSplits)
	}
	if len(d.DueDebts) != 1 || d.DueDebts[0].ID != "d1" {
		t.Errorf("due debts = %+v", d.DueDebts)
	}
	if len(d.PendingShopping) != 1 || d.PendingShopping[0].ID != "i1" {
		t.Errorf("pending shopping = %+v", d.PendingShopping)
	}
	if d.Empty() {
		t.Error("digest should not be empty")
	}

	text := d.Text()
	for _, want := range []string{"2024-06-10", "Bike", "Dinner", "300.00 per head", "Karim owes you 500.00", "Rice"} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	d := Build(ledger.Snapshot{}, "2024-06-10")
	if !d.Empty() {
		t.Errorf("expected empty digest: %+v", d)
	}
	if d.ActiveLoans == nil || d.DueDebts == nil {
		t.Error("lists should be empty, not nil")
	}
	if !strings.Contains(d.Text(), "Nothing due today") {
		t.Errorf("text = %q", d.Text())
	}
}

func TestCronSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "0 22 * * *", false},
		{"22:00", "0 22 * * *", false},
		{"07:30", "30 7 * * *", false},
		{"00:05", "5 0 * * *", false},
		{"7:30", "", true},
		{"25:00", "", true},
		{"noon", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CronSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CronSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CronSpec(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type recordingNotifier struct {
	digests []Digest
	err     error
}

func (r *recordingNotifier) Notify(_ context.Context, d Digest) error {
	r.digests = append(r.digests, d)
	return r.err
}

func TestScheduler_RunOnce(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ledger.WithClock(func() time.Time { return fixedDay }))
	n := &recordingNotifier{}
	s := NewScheduler(l, n)

	if _, err := s.RunOnce(ctx); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if len(n.digests) != 0 {
		t.Error("empty digest must not be sent")
	}

	if _, err := l.AddShoppingItem(ctx, "Eggs", 150); err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}
	d, err := s.RunOnce(ctx)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if len(n.digests) != 1 || d.Date != "2024-06-10" || len(d.PendingShopping) != 1 {
		t.Errorf("digest = %+v", d)
	}

	n.err = errors.New("smtp down")
	if _, err := s.RunOnce(ctx); err == nil {
		t.Error("notifier failure should be returned")
	}
}

func TestScheduler_FollowsProfile(t *testing.T) {
	ctx := context.Background()
	l := ledger.New()
	s := NewScheduler(l, &recordingNotifier{})
	l.Subscribe(s.Subscriber())

	if err := s.Start(""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()
	if s.Spec() != "0 22 * * *" {
		t.Errorf("spec = %q", s.Spec())
	}

	if _, err := l.UpdateProfile(ctx, models.Profile{Name: "Owner", ReminderTime: "08:15"}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if s.Spec() != "15 8 * * *" {
		t.Errorf("spec after update = %q", s.Spec())
	}

	if _, err := l.AddShoppingItem(ctx, "Tea", 90); err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}
	if s.Spec() != "15 8 * * *" {
		t.Errorf("unrelated change moved the schedule: %q", s.Spec())
	}

	if err := s.Start("9am"); err == nil {
		t.Error("invalid reminder time should fail")
	}
}

func TestEmailNotifier(t *testing.T) {
	n := NewEmailNotifier("smtp.example.com:587", "user", "secret", "fintrack@example.com", "owner@example.com")
	var sent *email.Email
	var gotAddr string
	n.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		if auth == nil {
			t.Error("expected SMTP auth")
		}
		sent, gotAddr = e, addr
		return nil
	}

	d := Build(sampleSnapshot(), "2024-06-10")
	if err := n.Notify(context.Background(), d); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if sent.Subject != "FinTrack reminder for 2024-06-10" || sent.To[0] != "owner@example.com" {
		t.Errorf("email = %+v", sent)
	}
	if !strings.Contains(string(sent.Text), "Dinner") {
		t.Errorf("body = %s", sent.Text)
	}

	n.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }
	if err := n.Notify(context.Background(), d); err == nil {
		t.Error("send failure should be returned")
	}
}

func TestMulti(t *testing.T) {
	ok := &recordingNotifier{}
	bad := &recordingNotifier{err: errors.New("boom")}
	err := Multi{LogNotifier{}, bad, ok}.Notify(context.Background(), Digest{Date: "2024-06-10"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v", err)
	}
	if len(ok.digests) != 1 {
		t.Error("later notifiers must still run")
	}
}
