package calculator

import (
	"testing"

	"github.com/mmynk/yardsale/internal/models"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.5, 2.5},
		{2.499, 2.5},
		{2.675, 2.68},
		{0.004, 0},
		{-1.005, -1.01},
		{10, 10},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2.5", 2.5, false},
		{" 10 ", 10, false},
		{"0.333", 0.33, false},
		{"-5", -5, false},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSumIsExact(t *testing.T) {
	// 0.1 + 0.2 drifts in float64
	if got := Sum(0.1, 0.2); got != 0.3 {
		t.Errorf("Sum(0.1, 0.2) = %v, want 0.3", got)
	}
	if got := Sum(); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "50¢"},
		{0.25, "25¢"},
		{0.01, "1¢"},
		{0, "$0.00"},
		{1, "$1.00"},
		{2.5, "$2.50"},
		{1234.5, "$1,234.50"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatInput(t *testing.T) {
	if got := FormatInput(2.5); got != "2.50" {
		t.Errorf("FormatInput(2.5) = %q, want %q", got, "2.50")
	}
}

func TestSalesPerSeller(t *testing.T) {
	ds := models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}, {ID: "s2", Name: "Bob"}},
		SoldItems: []models.SoldItem{
			{ID: "a", Amount: 1.1, SellerID: "s1"},
			{ID: "b", Amount: 2.2, SellerID: "s1"},
			{ID: "c", Amount: 5, SellerID: "gone"},
		},
	}

	totals := SalesPerSeller(ds)
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	if totals[0].SellerID != "s1" || totals[0].Total != 3.3 || totals[0].Items != 2 {
		t.Errorf("Alice total = %+v, want 3.3 over 2 items", totals[0])
	}
	if totals[1].Total != 0 || totals[1].Items != 0 {
		t.Errorf("Bob total = %+v, want zero", totals[1])
	}
	if got := GrandTotal(totals); got != 3.3 {
		t.Errorf("GrandTotal = %v, want 3.3", got)
	}
}

func TestTransactionTotal(t *testing.T) {
	lines := []models.LineItem{{Amount: 0.25}, {Amount: 0.5}, {Amount: 19.99}}
	if got := TransactionTotal(lines); got != 20.74 {
		t.Errorf("TransactionTotal = %v, want 20.74", got)
	}
}
