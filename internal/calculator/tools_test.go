package calculator

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		from    string
		to      string
		expect  float64
		wantErr bool
	}{
		{"USD to BDT", 100, "USD", "BDT", 12150, false},
		{"BDT to USD", 12150, "BDT", "USD", 100, false},
		{"EUR to GBP", 10, "EUR", "GBP", 8.54, false},
		{"lower-case codes", 1, "gbp", "bdt", 154.8, false},
		{"same currency", 42, "BDT", "BDT", 42, false},
		{"unknown currency", 1, "JPY", "BDT", 0, true},
		{"negative amount", -1, "USD", "BDT", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert error = %v, wantErr %v", err, tt.wantErr)
			}
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("Convert = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestIncomeTax(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		female bool
		expect float64
	}{
		{"below threshold", 300000, false, 0},
		{"at threshold", 350000, false, 0},
		{"first slab only", 400000, false, 2500},
		{"female threshold", 400000, true, 0},
		// taxable 500000: 100000×5% + 300000×10% + 100000×15%
		{"three slabs", 850000, false, 50000},
		// taxable 1650000: 5000 + 30000 + 60000 + 100000 + 350000×25%
		{"top slab", 2000000, false, 282500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IncomeTax(tt.income, tt.female)
			if err != nil {
				t.Fatalf("IncomeTax failed: %v", err)
			}
			if math.Abs(got.Tax-tt.expect) > 0.01 {
				t.Errorf("Tax = %v, want %v", got.Tax, tt.expect)
			}
			var sum float64
			for _, s := range got.Slabs {
				sum += s.Tax
			}
			if math.Abs(sum-got.Tax) > 0.05 {
				t.Errorf("slab taxes %v do not add up to %v", sum, got.Tax)
			}
		})
	}

	if _, err := IncomeTax(-1, false); err == nil {
		t.Error("expected error for negative income")
	}
}

func TestZakat(t *testing.T) {
	got, err := Zakat(40000, 50000, 10000, 0)
	if err != nil {
		t.Fatalf("Zakat failed: %v", err)
	}
	if got.Wealth != 100000 || got.Zakat != 2500 {
		t.Errorf("Zakat = %+v, want wealth 100000 zakat 2500", got)
	}

	got, err = Zakat(-90000, 10000, 0, 0)
	if err != nil {
		t.Fatalf("Zakat failed: %v", err)
	}
	if got.Zakat != 0 {
		t.Errorf("negative wealth should owe nothing, got %v", got.Zakat)
	}

	if _, err := Zakat(0, -1, 0, 0); err == nil {
		t.Error("expected error for negative assets")
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(8884.8788); got != 8884.88 {
		t.Errorf("Round2 = %v, want 8884.88", got)
	}
}
