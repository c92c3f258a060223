package calc

import (
	"errors"
	"math"
	"testing"
)

func TestFuelCost(t *testing.T) {
	res, err := FuelCost(120, 5.89, 12)
	if err != nil {
		t.Fatalf("FuelCost: %v", err)
	}
	if res.Liters != 10 {
		t.Errorf("liters: got %v, want 10", res.Liters)
	}
	if res.TotalCost != 58.90 {
		t.Errorf("total: got %v, want 58.90", res.TotalCost)
	}
	if math.Abs(res.CostPerKM-0.49) > 1e-9 {
		t.Errorf("cost/km: got %v, want 0.49", res.CostPerKM)
	}
}

func TestFuelCostZeroDistance(t *testing.T) {
	res, err := FuelCost(0, 5.89, 12)
	if err != nil {
		t.Fatalf("FuelCost: %v", err)
	}
	if res.TotalCost != 0 || res.CostPerKM != 0 {
		t.Errorf("zero distance: got %+v", res)
	}
}

func TestFuelCostInvalid(t *testing.T) {
	cases := [][3]float64{
		{-1, 5, 12},
		{100, -5, 12},
		{100, 5, 0},
	}
	for _, c := range cases {
		if _, err := FuelCost(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("FuelCost(%v): got %v, want ErrInvalidInput", c, err)
		}
	}
}

func TestBreakEven(t *testing.T) {
	res, err := BreakEven(1000, 25, 10)
	if err != nil {
		t.Fatalf("BreakEven: %v", err)
	}
	// 1000 / 15 = 66.67 → 67 units.
	if res.Units != 67 {
		t.Errorf("units: got %v, want 67", res.Units)
	}
	if res.Revenue != 1675 {
		t.Errorf("revenue: got %v, want 1675", res.Revenue)
	}
}

func TestBreakEvenNonPositiveMargin(t *testing.T) {
	if _, err := BreakEven(1000, 10, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero margin: got %v, want ErrInvalidInput", err)
	}
	if _, err := BreakEven(1000, 10, 12); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative margin: got %v, want ErrInvalidInput", err)
	}
}

func TestDailyProfit(t *testing.T) {
	res, err := DailyProfit(380, 75.50, 30, 20, 10)
	if err != nil {
		t.Fatalf("DailyProfit: %v", err)
	}
	if res.Costs != 125.50 {
		t.Errorf("costs: got %v, want 125.50", res.Costs)
	}
	if res.Profit != 254.50 {
		t.Errorf("profit: got %v, want 254.50", res.Profit)
	}
	if res.HourlyRate != 25.45 {
		t.Errorf("hourly: got %v, want 25.45", res.HourlyRate)
	}
}

func TestDailyProfitZeroHours(t *testing.T) {
	res, err := DailyProfit(100, 10, 0, 0, 0)
	if err != nil {
		t.Fatalf("DailyProfit: %v", err)
	}
	if res.HourlyRate != 0 {
		t.Errorf("hourly with zero hours: got %v, want 0", res.HourlyRate)
	}
}

func TestMatchTools(t *testing.T) {
	matches := MatchTools("Quanto custa a gasolina para motoristas de aplicativo? Lucro por hora e custos fixos.", 3)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	// Scores must be non-increasing.
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("scores out of order: %v then %v", matches[i-1].Score, matches[i].Score)
		}
	}
}

func TestMatchToolsNoHits(t *testing.T) {
	if got := MatchTools("nothing relevant here", 3); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestMatchToolsCap(t *testing.T) {
	got := MatchTools("fuel lucro custos fixos gasolina profit margem", 1)
	if len(got) != 1 {
		t.Errorf("cap: got %d, want 1", len(got))
	}
}
