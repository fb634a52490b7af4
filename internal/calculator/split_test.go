package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/shohagvaii216/FinTrack/internal/models"
)

func TestNewBillSplit(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		total        float64
		participants []string
		wantErr      bool
		wantField    string
		validateFunc func(t *testing.T, s models.BillSplit)
	}{
		{
			name:         "three-way split",
			title:        "Dinner",
			total:        900,
			participants: []string{"A", "B", "C"},
			validateFunc: func(t *testing.T, s models.BillSplit) {
				if share := PerHeadShare(s); share != 300 {
					t.Errorf("PerHeadShare = %v, want exactly 300", share)
				}
				if s.Payer != "A" {
					t.Errorf("Payer = %q, want A", s.Payer)
				}
				if s.IsSettled {
					t.Error("new split should not be settled")
				}
				if s.ID == "" {
					t.Error("expected generated ID")
				}
			},
		},
		{
			name:         "names are trimmed and blanks dropped",
			title:        "  Cab  ",
			total:        100,
			participants: []string{" Rafi ", "", "  ", "Nila"},
			validateFunc: func(t *testing.T, s models.BillSplit) {
				if s.Title != "Cab" {
					t.Errorf("Title = %q, want Cab", s.Title)
				}
				if !reflect.DeepEqual(s.Participants, []string{"Rafi", "Nila"}) {
					t.Errorf("Participants = %v", s.Participants)
				}
				if math.Abs(PerHeadShare(s)-50) > 0.001 {
					t.Errorf("PerHeadShare = %v, want 50", PerHeadShare(s))
				}
			},
		},
		{
			name:         "duplicates count as separate shares",
			title:        "Tea",
			total:        90,
			participants: []string{"A", "A", "B"},
			validateFunc: func(t *testing.T, s models.BillSplit) {
				if PerHeadShare(s) != 30 {
					t.Errorf("PerHeadShare = %v, want 30", PerHeadShare(s))
				}
			},
		},
		{
			name:         "empty participant list is rejected",
			title:        "Lunch",
			total:        100,
			participants: []string{" ", ""},
			wantErr:      true,
			wantField:    "participants",
		},
		{
			name:         "empty title is rejected",
			title:        " ",
			total:        100,
			participants: []string{"A"},
			wantErr:      true,
			wantField:    "title",
		},
		{
			name:         "zero amount is rejected",
			title:        "Lunch",
			total:        0,
			participants: []string{"A"},
			wantErr:      true,
			wantField:    "totalAmount",
		},
		{
			name:         "NaN amount is rejected",
			title:        "Lunch",
			total:        math.NaN(),
			participants: []string{"A"},
			wantErr:      true,
			wantField:    "totalAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewBillSplit(tt.title, tt.total, tt.participants, "2024-05-01")
			if tt.wantErr {
				var verr *models.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, s)
			}
		})
	}
}

func TestParseParticipants(t *testing.T) {
	got := ParseParticipants("Rafi, Nila ,, Tanu ,")
	want := []string{"Rafi", "Nila", "Tanu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseParticipants = %v, want %v", got, want)
	}
	if got := ParseParticipants(" , "); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
}

func TestToggleSettled(t *testing.T) {
	s, err := NewBillSplit("Dinner", 900, []string{"A", "B", "C"}, "2024-05-01")
	if err != nil {
		t.Fatalf("NewBillSplit failed: %v", err)
	}

	toggled := ToggleSettled(s)
	if !toggled.IsSettled {
		t.Error("expected settled after toggle")
	}
	if s.IsSettled {
		t.Error("original split must not change")
	}
	if toggled.TotalAmount != s.TotalAmount || PerHeadShare(toggled) != PerHeadShare(s) {
		t.Error("toggle must not touch amounts")
	}
	if ToggleSettled(toggled).IsSettled {
		t.Error("expected unsettled after second toggle")
	}
}

func TestPerHeadShare_NoParticipants(t *testing.T) {
	if got := PerHeadShare(models.BillSplit{TotalAmount: 100}); got != 0 {
		t.Errorf("PerHeadShare = %v, want 0", got)
	}
}
