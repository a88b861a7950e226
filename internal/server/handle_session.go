package server

import (
	"net/http"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

// QuestionView is the wire shape of one catalog question.
type QuestionView struct {
	ID              string              `json:"id"`
	Prompt          string              `json:"prompt"`
	Description     string              `json:"description,omitempty"`
	Kind            checklist.InputType `json:"kind"`
	Options         []string            `json:"options,omitempty"`
	RoomOptions     []string            `json:"roomOptions,omitempty"`
	BathroomOptions []string            `json:"bathroomOptions,omitempty"`
	Placeholder     string              `json:"placeholder,omitempty"`
	Section         checklist.Section   `json:"section"`
}

// StepView is the wizard's presentation model for the current step.
type StepView struct {
	Token      string            `json:"token"`
	Step       int               `json:"step"`
	TotalSteps int               `json:"totalSteps"`
	Question   *QuestionView     `json:"question,omitempty"`
	Answer     *checklist.Answer `json:"answer,omitempty"`
	CanAdvance bool              `json:"canAdvance"`
	Completed  bool              `json:"completed"`
}

func questionView(q checklist.Question) *QuestionView {
	return &QuestionView{
		ID:              q.ID,
		Prompt:          q.Prompt,
		Description:     q.Description,
		Kind:            q.Kind,
		Options:         q.Options,
		RoomOptions:     q.RoomOptions,
		BathroomOptions: q.BathroomOptions,
		Placeholder:     q.Placeholder,
		Section:         q.Section,
	}
}

func stepView(doc SessionDoc) StepView {
	view := StepView{
		Token:      doc.ID,
		Step:       doc.State.Step,
		TotalSteps: len(checklist.VisibleQuestions(doc.State.Answers)),
		CanAdvance: doc.State.CanAdvance(),
		Completed:  doc.State.Completed,
	}
	if q, ok := doc.State.Current(); ok {
		view.Question = questionView(q)
		if a, ok := doc.State.Answers[q.ID]; ok {
			view.Answer = &a
		}
	}
	return view
}

func handleCreateSession(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := store.CreateSession(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, stepView(doc))
	}
}

func handleSessionState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stepView(sessionFrom(r)))
	}
}
