package checklist

import "testing"

func TestBrokerageFeeFirstBracket(t *testing.T) {
	// 1,000만원 deposit, no rent: 10,000,000 x 0.5% = 50,000, under the cap.
	fee := CalculateBrokerageFee("1,000", "")
	if fee == nil {
		t.Fatal("expected a fee for a valid deposit")
	}
	if fee.Housing != 50_000 {
		t.Errorf("expected housing fee 50000, got %d", fee.Housing)
	}
	if fee.Officetel != 40_000 {
		t.Errorf("expected officetel fee 40000, got %d", fee.Officetel)
	}
}

func TestBrokerageFeeCaps(t *testing.T) {
	// 4,900만원: 49,000,000 x 0.5% = 245,000, capped at 200,000.
	fee := CalculateBrokerageFee("4900", "")
	if fee == nil {
		t.Fatal("expected a fee")
	}
	if fee.Housing != 200_000 {
		t.Errorf("first bracket cap: expected 200000, got %d", fee.Housing)
	}

	// 9,000만원: 90,000,000 x 0.4% = 360,000, capped at 300,000.
	fee = CalculateBrokerageFee("9000", "")
	if fee.Housing != 300_000 {
		t.Errorf("second bracket cap: expected 300000, got %d", fee.Housing)
	}
}

func TestBrokerageFeeUncappedBrackets(t *testing.T) {
	// 2억원: 200,000,000 x 0.3% = 600,000.
	fee := CalculateBrokerageFee("20,000", "")
	if fee.Housing != 600_000 {
		t.Errorf("third bracket: expected 600000, got %d", fee.Housing)
	}

	// 20억원: 2,000,000,000 x 0.6% = 12,000,000.
	fee = CalculateBrokerageFee("200000", "")
	if fee.Housing != 12_000_000 {
		t.Errorf("top bracket: expected 12000000, got %d", fee.Housing)
	}
}

func TestBrokerageFeeRentConversion(t *testing.T) {
	// 1,000만원 deposit + 50만원 rent: base 10,000,000 + 500,000x100 =
	// 60,000,000, second bracket at 0.4% = 240,000.
	fee := CalculateBrokerageFee("1000", "50")
	if fee == nil {
		t.Fatal("expected a fee")
	}
	if fee.Housing != 240_000 {
		t.Errorf("expected housing fee 240000, got %d", fee.Housing)
	}
	if fee.Officetel != 240_000 {
		t.Errorf("expected officetel fee 240000, got %d", fee.Officetel)
	}
}

func TestBrokerageFeeInvalidDeposit(t *testing.T) {
	if fee := CalculateBrokerageFee("", "50"); fee != nil {
		t.Errorf("empty deposit: expected nil, got %+v", fee)
	}
	if fee := CalculateBrokerageFee("abc", ""); fee != nil {
		t.Errorf("malformed deposit: expected nil, got %+v", fee)
	}
}

func TestMovingAndCleaningCosts(t *testing.T) {
	mv := MovingCost("원룸")
	if mv == nil || mv.Min != 150_000 || mv.Max != 300_000 {
		t.Errorf("원룸 moving: expected 150000~300000, got %+v", mv)
	}
	cl := CleaningCost("쓰리룸 이상")
	if cl == nil || cl.Min != 180_000 || cl.Max != 300_000 {
		t.Errorf("쓰리룸 이상 cleaning: expected 180000~300000, got %+v", cl)
	}
	if MovingCost("복층") != nil {
		t.Error("unknown size: expected nil")
	}
	if CleaningCost("") != nil {
		t.Error("empty size: expected nil")
	}
}

func TestMonthlyInterest(t *testing.T) {
	// 5,000만원 loan: 50,000,000 x 4% / 12 = 166,666 (floored).
	if got := CalculateMonthlyInterest("5,000"); got != 166_666 {
		t.Errorf("expected 166666, got %d", got)
	}
	if got := CalculateMonthlyInterest(""); got != 0 {
		t.Errorf("empty loan: expected 0, got %d", got)
	}
}

func TestInsuranceFee(t *testing.T) {
	// 1억원 deposit over 2 years: 100,000,000 x 0.154% x 2 = 308,000.
	if got := CalculateInsuranceFee("10,000", "2"); got != 308_000 {
		t.Errorf("expected 308000, got %d", got)
	}
	if got := CalculateInsuranceFee("", "2"); got != 0 {
		t.Errorf("empty deposit: expected 0, got %d", got)
	}
	if got := CalculateInsuranceFee("10000", ""); got != 0 {
		t.Errorf("empty period: expected 0, got %d", got)
	}
}

func TestManwonToWon(t *testing.T) {
	if won, ok := ManwonToWon("1,234"); !ok || won != 12_340_000 {
		t.Errorf("expected 12340000, got %d (ok=%v)", won, ok)
	}
	if _, ok := ManwonToWon(""); ok {
		t.Error("empty input: expected not ok")
	}
	if _, ok := ManwonToWon("1,2x4"); ok {
		t.Error("malformed input: expected not ok")
	}
}
