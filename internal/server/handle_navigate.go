package server

import (
	"net/http"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

func handleAdvance(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		if doc.State.Completed {
			writeError(w, http.StatusConflict, "wizard already completed")
			return
		}
		if !doc.State.Advance() {
			writeError(w, http.StatusConflict, "current answer is incomplete")
			return
		}

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, stepView(doc))
	}
}

func handleRetreat(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		// Retreating at step 0 or from the result screen is a no-op; the
		// current view is still the correct response.
		if doc.State.Retreat() {
			if err := store.SaveSession(r.Context(), doc); err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}
		writeJSON(w, http.StatusOK, stepView(doc))
	}
}

// handleReset rewrites the full session document: answers, step, safety
// toggles and cost inputs all return to their zero state. The "are you
// sure" confirmation lives in the UI.
func handleReset(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		doc.State = checklist.NewState()
		doc.Safety = checklist.SafetyTerms{}
		doc.Costs = checklist.CostInputs{}

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, stepView(doc))
	}
}
