package server

import (
	"net/http"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

// CostLine is one formatted row of the 예상 비용 요약 panel.
type CostLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CostEstimateResponse struct {
	Inputs          checklist.CostInputs     `json:"inputs"`
	Brokerage       *checklist.BrokerageFee  `json:"brokerage,omitempty"`
	Moving          *checklist.CostRange     `json:"moving,omitempty"`
	Cleaning        *checklist.CostRange     `json:"cleaning,omitempty"`
	MonthlyInterest int64                    `json:"monthlyInterest"`
	InsuranceFee    int64                    `json:"insuranceFee"`
	Summary         []CostLine               `json:"summary"`
}

func buildEstimate(costs checklist.CostInputs) CostEstimateResponse {
	resp := CostEstimateResponse{
		Inputs:          costs,
		Moving:          checklist.MovingCost(costs.RoomSize),
		Cleaning:        checklist.CleaningCost(costs.RoomSize),
		MonthlyInterest: checklist.CalculateMonthlyInterest(costs.LoanAmount),
		InsuranceFee:    checklist.CalculateInsuranceFee(costs.Deposit, costs.ContractPeriod),
	}
	if costs.ShowBrokerageFee {
		resp.Brokerage = checklist.CalculateBrokerageFee(costs.Deposit, costs.MonthlyRent)
	}

	if won, ok := checklist.ManwonToWon(costs.Deposit); ok {
		resp.Summary = append(resp.Summary, CostLine{"보증금", checklist.FormatWon(won)})
	}
	if won, ok := checklist.ManwonToWon(costs.MonthlyRent); ok {
		resp.Summary = append(resp.Summary, CostLine{"월세", checklist.FormatWon(won)})
	}
	if b := resp.Brokerage; b != nil {
		lo, hi := b.Housing, b.Officetel
		if lo > hi {
			lo, hi = hi, lo
		}
		resp.Summary = append(resp.Summary, CostLine{"중개수수료", checklist.FormatWonRange(checklist.CostRange{Min: lo, Max: hi})})
	}
	if resp.Moving != nil {
		resp.Summary = append(resp.Summary, CostLine{"이사비용", checklist.FormatWonRange(*resp.Moving)})
	}
	if resp.Cleaning != nil {
		resp.Summary = append(resp.Summary, CostLine{"입주청소비용", checklist.FormatWonRange(*resp.Cleaning)})
	}
	if resp.MonthlyInterest > 0 {
		resp.Summary = append(resp.Summary, CostLine{"월 대출이자", checklist.FormatWon(resp.MonthlyInterest)})
	}
	if resp.InsuranceFee > 0 {
		resp.Summary = append(resp.Summary, CostLine{"보증보험료", checklist.FormatWon(resp.InsuranceFee)})
	}
	return resp
}

func handleCostEstimate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, buildEstimate(sessionFrom(r).Costs))
	}
}

func handleUpdateCosts(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		var costs checklist.CostInputs
		if err := readJSON(r, &costs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		doc.Costs = costs

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, buildEstimate(doc.Costs))
	}
}
