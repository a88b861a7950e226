package checklist

import (
	"reflect"
	"testing"
)

func answeredState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	s.SetAnswer("location", Answer{Kind: InputFreeText, Text: "서울시 강남구"})
	s.SetAnswer("contractType", Answer{Kind: InputContractBudget, Contract: &ContractBudget{
		Types: []string{ContractWolse}, WolseDeposit: "1000", WolseRent: "50",
	}})
	s.SetAnswer("moveInDate", Answer{Kind: InputMoveInDate, MoveIn: &MoveInChoice{Mode: MoveInSpecific, Value: "2025년 6월"}})
	s.SetAnswer("contractPeriod", Answer{Kind: InputSingleChoice, Choice: "2년 (기본)"})
	s.SetAnswer("propertyType", Answer{Kind: InputMultiChoice, Choices: []string{"아파트"}})
	s.SetAnswer("managementFee", Answer{Kind: InputFreeText, Text: "10만원 정도"})
	s.SetAnswer("roomsAndBathrooms", Answer{Kind: InputRoomLayout, Layout: &RoomLayout{Rooms: "원룸", Bathrooms: "1개"}})
	s.SetAnswer("floor", Answer{Kind: InputFloorPicker, Choices: []string{FloorAny}})
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingNone})
	s.SetAnswer("options", Answer{Kind: InputIconOptions, Options: &OptionPicks{Selected: []string{"에어컨"}}})
	s.SetAnswer(QuestionPets, Answer{Kind: InputPetDetails, Pets: &PetDetails{HasPets: No, Completed: true}})
	s.SetAnswer(QuestionJeonseLoan, Answer{Kind: InputSingleChoice, Choice: No})
	s.SetAnswer(QuestionInsurance, Answer{Kind: InputSingleChoice, Choice: No})
	s.SetAnswer(QuestionAdditionalTerms, Answer{Kind: InputFreeTextOrNone, Text: NoExtraTerms})
	return &s
}

func TestVisibleQuestionsIdempotent(t *testing.T) {
	s := answeredState(t)
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingRequired})

	ids := func(qs []Question) []string {
		out := make([]string, len(qs))
		for i, q := range qs {
			out[i] = q.ID
		}
		return out
	}

	first := ids(VisibleQuestions(s.Answers))
	second := ids(VisibleQuestions(s.Answers))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reads diverged: %v vs %v", first, second)
	}
}

func TestVisibleQuestionsHidesParkingCount(t *testing.T) {
	answers := map[string]Answer{}
	for _, q := range VisibleQuestions(answers) {
		if q.ID == QuestionParkingCount {
			t.Fatal("parkingCount should be hidden before parking is answered")
		}
	}

	answers[QuestionParking] = Answer{Kind: InputSingleChoice, Choice: ParkingRequired}
	found := false
	for _, q := range VisibleQuestions(answers) {
		if q.ID == QuestionParkingCount {
			found = true
		}
	}
	if !found {
		t.Error("parkingCount should be visible when parking is 필수")
	}

	answers[QuestionParking] = Answer{Kind: InputSingleChoice, Choice: ParkingNone}
	for _, q := range VisibleQuestions(answers) {
		if q.ID == QuestionParkingCount {
			t.Error("parkingCount should be hidden again when parking is 불필요")
		}
	}
}

func TestHiddenAnswerRetainedButFiltered(t *testing.T) {
	s := NewState()
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingPrefer})
	s.SetAnswer(QuestionParkingCount, Answer{Kind: InputSingleChoice, Choice: "1대"})
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingNone})

	if _, ok := s.Answers[QuestionParkingCount]; !ok {
		t.Error("hidden answer should stay in the map")
	}
	for _, row := range BuildSummary(s.Answers) {
		if row.Label == "주차 대수는 몇 대" {
			t.Error("hidden answer should not surface in the summary")
		}
	}

	// Flipping parking back makes the retained answer reappear.
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingRequired})
	visible := VisibleQuestions(s.Answers)
	found := false
	for _, q := range visible {
		if q.ID == QuestionParkingCount {
			found = true
		}
	}
	if !found {
		t.Error("parkingCount should be visible again")
	}
}

func TestAdvanceBlockedOnIncompleteAnswer(t *testing.T) {
	s := NewState()
	if s.CanAdvance() {
		t.Error("unanswered first question should block advancing")
	}
	if s.Advance() {
		t.Error("Advance should be a no-op while blocked")
	}
	if s.Step != 0 {
		t.Errorf("step moved to %d", s.Step)
	}

	s.SetAnswer("location", Answer{Kind: InputFreeText, Text: ""})
	if s.CanAdvance() {
		t.Error("empty text should block advancing")
	}

	s.SetAnswer("location", Answer{Kind: InputFreeText, Text: "판교역 근처"})
	if !s.CanAdvance() {
		t.Error("non-empty text should allow advancing")
	}
}

func TestContractBudgetCompleteness(t *testing.T) {
	s := NewState()
	s.SetAnswer("location", Answer{Kind: InputFreeText, Text: "서울"})
	s.Advance()

	s.SetAnswer("contractType", Answer{Kind: InputContractBudget, Contract: &ContractBudget{
		Types: []string{ContractJeonse, ContractWolse}, Jeonse: "20000",
	}})
	if s.CanAdvance() {
		t.Error("월세 selected without deposit and rent should block")
	}

	s.SetAnswer("contractType", Answer{Kind: InputContractBudget, Contract: &ContractBudget{
		Types: []string{ContractJeonse, ContractWolse}, Jeonse: "20000", WolseDeposit: "1000", WolseRent: "50",
	}})
	if !s.CanAdvance() {
		t.Error("all budget sub-fields present should allow advancing")
	}
}

func TestWalkToCompletion(t *testing.T) {
	s := answeredState(t)

	total := len(VisibleQuestions(s.Answers))
	for i := 0; i < total; i++ {
		if s.Completed {
			t.Fatalf("completed early at step %d", i)
		}
		if !s.Advance() {
			q, _ := s.Current()
			t.Fatalf("advance blocked at step %d (%s)", s.Step, q.ID)
		}
	}

	if !s.Completed {
		t.Fatal("expected terminal state after the last step")
	}
	if _, ok := s.Current(); ok {
		t.Error("terminal state should have no current question")
	}
	if s.Advance() {
		t.Error("Advance from the terminal state should be a no-op")
	}
	if s.Retreat() {
		t.Error("Retreat from the terminal state should be a no-op")
	}
}

func TestRetreat(t *testing.T) {
	s := answeredState(t)
	if s.Retreat() {
		t.Error("Retreat at step 0 should be a no-op")
	}
	s.Advance()
	s.Advance()
	if !s.Retreat() {
		t.Error("Retreat should move back")
	}
	if s.Step != 1 {
		t.Errorf("expected step 1, got %d", s.Step)
	}
}

func TestStepClampWhenVisibilityShrinks(t *testing.T) {
	s := answeredState(t)
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingRequired})
	s.SetAnswer(QuestionParkingCount, Answer{Kind: InputSingleChoice, Choice: "1대"})

	// Park the index on the last visible question.
	s.Step = len(VisibleQuestions(s.Answers)) - 1

	// Hiding parkingCount shrinks the list by one; the index must follow.
	s.SetAnswer(QuestionParking, Answer{Kind: InputSingleChoice, Choice: ParkingNone})
	if n := len(VisibleQuestions(s.Answers)); s.Step != n-1 {
		t.Errorf("expected step clamped to %d, got %d", n-1, s.Step)
	}
}

func TestAnswerKindMismatchBlocks(t *testing.T) {
	s := NewState()
	s.SetAnswer("location", Answer{Kind: InputSingleChoice, Choice: "서울"})
	if s.CanAdvance() {
		t.Error("answer stored under the wrong kind should block advancing")
	}
}
