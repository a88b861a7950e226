package checklist

// State is the mutable wizard state: the answer map, the index into the
// currently visible question list, and the terminal flag set once the
// user advances past the last step. The zero-ish value from NewState is
// the reset state.
type State struct {
	Answers   map[string]Answer `json:"answers"`
	Step      int               `json:"step"`
	Completed bool              `json:"completed"`
}

func NewState() State {
	return State{Answers: map[string]Answer{}}
}

// VisibleQuestions filters the catalog against answers. It is recomputed
// on every read — visibility predicates depend on answers, so a cached
// list would go stale the moment a controlling answer changes.
func VisibleQuestions(answers map[string]Answer) []Question {
	visible := make([]Question, 0, len(catalog))
	for _, q := range catalog {
		if q.Visible == nil || q.Visible(answers) {
			visible = append(visible, q)
		}
	}
	return visible
}

// Current returns the question at the current step, or false when the
// wizard has reached its terminal state.
func (s *State) Current() (Question, bool) {
	if s.Completed {
		return Question{}, false
	}
	visible := VisibleQuestions(s.Answers)
	if s.Step < 0 || s.Step >= len(visible) {
		return Question{}, false
	}
	return visible[s.Step], true
}

// SetAnswer replaces the answer for id wholesale. The step index is left
// alone, and answers to questions that the change hides are retained:
// they drop out of every derived view through VisibleQuestions, and come
// back if the user flips the controlling answer again.
func (s *State) SetAnswer(id string, a Answer) {
	if s.Answers == nil {
		s.Answers = map[string]Answer{}
	}
	s.Answers[id] = a

	// Changing an answer can hide the current question; clamp so the
	// index stays within the visible list.
	if n := len(VisibleQuestions(s.Answers)); s.Step >= n && n > 0 {
		s.Step = n - 1
	}
}

// CanAdvance reports whether the current question's answer is complete
// enough to move on.
func (s *State) CanAdvance() bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	a, ok := s.Answers[q.ID]
	if !ok || a.Kind != q.Kind {
		return false
	}
	return answerComplete(q.Kind, a)
}

// answerComplete is the per-kind completeness predicate. The same rule
// gates advancing and decides whether a summary row is worth rendering.
func answerComplete(kind InputType, a Answer) bool {
	switch kind {
	case InputFreeText, InputFreeTextOrNone:
		return a.Text != ""
	case InputSingleChoice:
		return a.Choice != ""
	case InputMultiChoice, InputFloorPicker:
		return len(a.Choices) > 0
	case InputContractBudget:
		c := a.Contract
		if c == nil || len(c.Types) == 0 {
			return false
		}
		if contains(c.Types, ContractJeonse) && c.Jeonse == "" {
			return false
		}
		if contains(c.Types, ContractWolse) && (c.WolseDeposit == "" || c.WolseRent == "") {
			return false
		}
		return true
	case InputMoveInDate:
		return a.MoveIn != nil && a.MoveIn.Value != ""
	case InputRoomLayout:
		return a.Layout != nil && a.Layout.Rooms != "" && a.Layout.Bathrooms != ""
	case InputIconOptions:
		return a.Options != nil && len(a.Options.Selected) > 0
	case InputPetDetails:
		return a.Pets != nil && a.Pets.Completed
	}
	return false
}

// Advance moves one step forward, or transitions to the terminal state
// when the current step is the last visible one. It is a no-op while the
// current answer is incomplete, and reports whether anything changed.
func (s *State) Advance() bool {
	if s.Completed || !s.CanAdvance() {
		return false
	}
	if s.Step < len(VisibleQuestions(s.Answers))-1 {
		s.Step++
	} else {
		s.Completed = true
	}
	return true
}

// Retreat moves one step back; at step 0 it is a no-op. There is no way
// back out of the terminal state short of a reset.
func (s *State) Retreat() bool {
	if s.Completed || s.Step == 0 {
		return false
	}
	s.Step--
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
