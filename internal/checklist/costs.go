package checklist

import (
	"math"
	"strconv"
	"strings"
)

// Cost inputs and calculators. Monetary inputs arrive as man-won
// (10,000 KRW) strings, possibly comma-grouped; outputs are won. Missing
// or unparseable inputs degrade to nil/zero results, never errors — the
// entry layer strips non-numeric characters before they get here.

// CostInputs is the cost-calculator form, independent of the wizard flow
// and reset together with it.
type CostInputs struct {
	Deposit          string `json:"deposit"`
	MonthlyRent      string `json:"monthlyRent"`
	PropertyType     string `json:"propertyType"`
	RoomSize         string `json:"roomSize"`
	ShowBrokerageFee bool   `json:"showBrokerageFee"`
	ShowMovingCost   bool   `json:"showMovingCost"`
	ShowCleaningCost bool   `json:"showCleaningCost"`
	JeonseLoan       bool   `json:"jeonseeLoan"`
	LoanAmount       string `json:"loanAmount"`
	DepositInsurance bool   `json:"depositInsurance"`
	ContractPeriod   string `json:"contractPeriod"`
}

// BrokerageFee is the statutory-cap commission for both dwelling kinds.
type BrokerageFee struct {
	Housing   int64 `json:"housing"`
	Officetel int64 `json:"officetel"`
}

// CostRange is a min/max won estimate.
type CostRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Housing brokerage rate schedule (2025). Brackets are ascending,
// contiguous and non-overlapping; the first two carry statutory caps.
var housingRates = []struct {
	min, max float64
	rate     float64
	cap      int64
}{
	{0, 50_000_000, 0.005, 200_000},
	{50_000_000, 100_000_000, 0.004, 300_000},
	{100_000_000, 600_000_000, 0.003, 0},
	{600_000_000, 1_200_000_000, 0.004, 0},
	{1_200_000_000, 1_500_000_000, 0.005, 0},
	{1_500_000_000, math.Inf(1), 0.006, 0},
}

const officetelRate = 0.004 // 주거용 85㎡ 이하

// CalculateBrokerageFee computes the capped housing fee and the flat
// officetel fee from man-won deposit and monthly rent strings. The base
// amount uses the conventional 100x rent-to-deposit conversion. Returns
// nil when the deposit is empty or unparseable.
func CalculateBrokerageFee(deposit, monthlyRent string) *BrokerageFee {
	dep, ok := parseManwon(deposit)
	if !ok {
		return nil
	}
	rent, _ := parseManwon(monthlyRent)
	base := dep*10_000 + rent*10_000*100

	var housing int64
	for _, b := range housingRates {
		if base >= b.min && base < b.max {
			housing = int64(math.Floor(base * b.rate))
			if b.cap > 0 && housing > b.cap {
				housing = b.cap
			}
			break
		}
	}

	return &BrokerageFee{
		Housing:   housing,
		Officetel: int64(math.Floor(base * officetelRate)),
	}
}

var movingCosts = map[string]CostRange{
	"원룸":     {150_000, 300_000},
	"투룸":     {300_000, 500_000},
	"쓰리룸 이상": {500_000, 800_000},
}

var cleaningCosts = map[string]CostRange{
	"원룸":     {80_000, 150_000},
	"투룸":     {120_000, 200_000},
	"쓰리룸 이상": {180_000, 300_000},
}

// MovingCost returns the expected moving-cost range for a dwelling size
// category, or nil for an unknown category.
func MovingCost(size string) *CostRange {
	if r, ok := movingCosts[size]; ok {
		return &r
	}
	return nil
}

// CleaningCost returns the expected move-in cleaning cost range for a
// dwelling size category, or nil for an unknown category.
func CleaningCost(size string) *CostRange {
	if r, ok := cleaningCosts[size]; ok {
		return &r
	}
	return nil
}

const loanAnnualRate = 0.04

// CalculateMonthlyInterest estimates the monthly jeonse-loan interest at
// the reference 4% annual rate. Zero when the amount is missing.
func CalculateMonthlyInterest(loanAmount string) int64 {
	loan, ok := parseManwon(loanAmount)
	if !ok {
		return 0
	}
	return int64(math.Floor(loan * 10_000 * loanAnnualRate / 12))
}

const insuranceRate = 0.00154

// CalculateInsuranceFee estimates the deposit-insurance premium
// (deposit x 0.154% x contract years). Zero when either input is missing.
func CalculateInsuranceFee(deposit, periodYears string) int64 {
	dep, ok := parseManwon(deposit)
	if !ok {
		return 0
	}
	period, ok := parseManwon(periodYears)
	if !ok {
		return 0
	}
	return int64(math.Floor(dep * 10_000 * insuranceRate * period))
}

// ManwonToWon converts a man-won string to won. Reports false for empty
// or malformed input.
func ManwonToWon(s string) (int64, bool) {
	v, ok := parseManwon(s)
	if !ok {
		return 0, false
	}
	return int64(v * 10_000), true
}

// parseManwon strips thousands separators and parses the remainder as a
// number. Empty or malformed input reports false.
func parseManwon(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
