package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

func handleSetAnswer(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		if doc.State.Completed {
			writeError(w, http.StatusConflict, "wizard already completed")
			return
		}

		q, ok := checklist.QuestionByID(chi.URLParam(r, "questionID"))
		if !ok {
			writeError(w, http.StatusNotFound, "unknown question")
			return
		}

		var answer checklist.Answer
		if err := readJSON(r, &answer); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if answer.Kind != q.Kind {
			writeError(w, http.StatusBadRequest, "answer kind does not match question")
			return
		}

		doc.State.SetAnswer(q.ID, answer)

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, stepView(doc))
	}
}

type ToggleRequest struct {
	Option string `json:"option"`
}

// handleToggleAnswer applies one click of a multi-select option, with
// the exclusivity rules the form defines for each kind.
func handleToggleAnswer(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := sessionFrom(r)

		if doc.State.Completed {
			writeError(w, http.StatusConflict, "wizard already completed")
			return
		}

		q, ok := checklist.QuestionByID(chi.URLParam(r, "questionID"))
		if !ok {
			writeError(w, http.StatusNotFound, "unknown question")
			return
		}

		var req ToggleRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Option == "" {
			writeError(w, http.StatusBadRequest, "option is required")
			return
		}
		if !validOption(q, req.Option) {
			writeError(w, http.StatusBadRequest, "unknown option")
			return
		}

		current := doc.State.Answers[q.ID]

		var next checklist.Answer
		switch q.Kind {
		case checklist.InputMultiChoice:
			next = checklist.TogglePropertyType(current, req.Option)
		case checklist.InputFloorPicker:
			next = checklist.ToggleFloor(current, req.Option)
		case checklist.InputIconOptions:
			next = checklist.ToggleOption(current, req.Option)
		default:
			writeError(w, http.StatusBadRequest, "question does not support toggling")
			return
		}

		doc.State.SetAnswer(q.ID, next)

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, stepView(doc))
	}
}

func validOption(q checklist.Question, option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
