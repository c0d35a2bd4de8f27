package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/househub/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name      string
		total     decimal.Decimal
		roommates []string
		wantShare string
		wantErr   bool
	}{
		{name: "even three-way split", total: d("90"), roommates: []string{"a", "b", "c"}, wantShare: "30"},
		{name: "rounds to the cent", total: d("100"), roommates: []string{"a", "b", "c"}, wantShare: "33.33"},
		{name: "rounds half away from zero", total: d("0.05"), roommates: []string{"a", "b"}, wantShare: "0.03"},
		{name: "single participant", total: d("12.5"), roommates: []string{"a"}, wantShare: "12.5"},
		{name: "no participants should error", total: d("10"), roommates: nil, wantErr: true},
		{name: "zero total should error", total: decimal.Zero, roommates: []string{"a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualSplit(tt.total, tt.roommates)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if len(got) != len(tt.roommates) {
				t.Fatalf("got %d contributions, want %d", len(got), len(tt.roommates))
			}
			for i, c := range got {
				if c.RoommateID != tt.roommates[i] {
					t.Errorf("contribution %d roommate = %s, want %s", i, c.RoommateID, tt.roommates[i])
				}
				if !c.Responsible.Equal(d(tt.wantShare)) {
					t.Errorf("contribution %d responsible = %s, want %s", i, c.Responsible, tt.wantShare)
				}
				if !c.Paid.IsZero() {
					t.Errorf("contribution %d should start unpaid", i)
				}
			}
		})
	}
}

func TestCustomSplit(t *testing.T) {
	got, err := CustomSplit([]string{"a", "b", "c"}, map[string]decimal.Decimal{
		"a": d("50"),
		"b": d("25.555"),
	})
	if err != nil {
		t.Fatalf("CustomSplit failed: %v", err)
	}
	want := []string{"50", "25.56", "0"}
	for i, c := range got {
		if !c.Responsible.Equal(d(want[i])) {
			t.Errorf("contribution %d responsible = %s, want %s", i, c.Responsible, want[i])
		}
	}

	if _, err := CustomSplit([]string{"a"}, map[string]decimal.Decimal{"a": d("-1")}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("negative share: expected ErrInvalidInput, got %v", err)
	}
}

func TestRemaining(t *testing.T) {
	line := func(responsible, paid string) models.Contribution {
		return models.Contribution{RoommateID: "x", Responsible: d(responsible), Paid: d(paid)}
	}

	tests := []struct {
		name          string
		total         string
		contributions []models.Contribution
		want          string
	}{
		{name: "nothing paid", total: "90", contributions: []models.Contribution{line("30", "0"), line("30", "0"), line("30", "0")}, want: "90"},
		{name: "one share paid", total: "90", contributions: []models.Contribution{line("30", "30"), line("30", "0"), line("30", "0")}, want: "60"},
		{name: "all paid", total: "90", contributions: []models.Contribution{line("30", "30"), line("30", "30"), line("30", "30")}, want: "0"},
		{name: "over-payment floors at zero", total: "90", contributions: []models.Contribution{line("30", "50"), line("30", "30"), line("30", "30")}, want: "0"},
		{name: "over-payment offsets others", total: "90", contributions: []models.Contribution{line("30", "50"), line("30", "0"), line("30", "0")}, want: "40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(d(tt.total), tt.contributions)
			if !got.Equal(d(tt.want)) {
				t.Errorf("Remaining() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateBalances(t *testing.T) {
	payments := []models.Payment{
		{TotalAmount: d("60"), Contributions: []models.Contribution{
			{RoommateID: "a", Responsible: d("30"), Paid: d("30")},
			{RoommateID: "b", Responsible: d("30"), Paid: d("10")},
		}},
		{TotalAmount: d("40"), Contributions: []models.Contribution{
			{RoommateID: "b", Responsible: d("20"), Paid: d("25")},
			{RoommateID: "c", Responsible: d("20"), Paid: d("0")},
		}},
	}

	balances := CalculateBalances(payments)
	if len(balances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(balances))
	}

	want := map[string]string{"a": "0", "b": "20", "c": "20"}
	for _, b := range balances {
		if !b.Outstanding.Equal(d(want[b.RoommateID])) {
			t.Errorf("%s outstanding = %s, want %s", b.RoommateID, b.Outstanding, want[b.RoommateID])
		}
	}
	if balances[0].RoommateID != "a" || balances[2].RoommateID != "c" {
		t.Error("balances should follow first-appearance order")
	}
	if !FullyPaid(payments[0].Contributions[0]) || FullyPaid(payments[0].Contributions[1]) {
		t.Error("FullyPaid mismatch")
	}
}
