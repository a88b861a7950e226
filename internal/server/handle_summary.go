package server

import (
	"net/http"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

type SummaryResponse struct {
	Contract     []checklist.SummaryRow  `json:"contract"`
	Optional     []checklist.SummaryRow  `json:"optional"`
	SpecialTerms []checklist.SpecialTerm `json:"specialTerms"`
	Safety       checklist.SafetyTerms   `json:"safety"`
}

func buildSummary(doc SessionDoc) SummaryResponse {
	rows := checklist.BuildSummary(doc.State.Answers)
	contract, optional := checklist.SplitBySection(rows)
	return SummaryResponse{
		Contract:     contract,
		Optional:     optional,
		SpecialTerms: checklist.GenerateSpecialTerms(doc.State.Answers, doc.Safety),
		Safety:       doc.Safety,
	}
}

func handleSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		if !doc.State.Completed {
			writeError(w, http.StatusConflict, "wizard is not completed")
			return
		}
		writeJSON(w, http.StatusOK, buildSummary(doc))
	}
}

// handleSafetyTerms sets the three safety-clause toggles and returns the
// regenerated summary, special terms included.
func handleSafetyTerms(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		if !doc.State.Completed {
			writeError(w, http.StatusConflict, "wizard is not completed")
			return
		}

		var safety checklist.SafetyTerms
		if err := readJSON(r, &safety); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		for _, c := range []checklist.SafetyChoice{safety.Registration, safety.RightsFreeze, safety.OwnerAccount} {
			if c != checklist.SafetyUnset && c != checklist.SafetySelected && c != checklist.SafetySkipped {
				writeError(w, http.StatusBadRequest, "invalid safety choice")
				return
			}
		}

		doc.Safety = safety

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, buildSummary(doc))
	}
}
