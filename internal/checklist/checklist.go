// Package checklist defines the core domain of the rental-contract
// checklist wizard: the question catalog, the answer flow, the cost
// calculators and the derived summary/special-terms views. Everything
// here is pure Go with no I/O.
package checklist

// InputType discriminates how a question is answered and which Answer
// fields are meaningful for it.
type InputType string

const (
	InputFreeText       InputType = "freeText"       // single text field
	InputSingleChoice   InputType = "singleChoice"   // one option
	InputContractBudget InputType = "contractBudget" // 전세/월세 with budget sub-fields
	InputMoveInDate     InputType = "moveInDate"     // specific date text or negotiable
	InputMultiChoice    InputType = "multiChoice"    // any number of options
	InputRoomLayout     InputType = "roomLayout"     // rooms + bathrooms pair
	InputFloorPicker    InputType = "floorPicker"    // floor preferences + elevator
	InputIconOptions    InputType = "iconOptions"    // icon multi-select with free-text other
	InputPetDetails     InputType = "petDetails"     // yes/no with clause sub-flow
	InputFreeTextOrNone InputType = "freeTextOrNone" // text field or explicit "none"
)

// Section buckets summary rows into the two printed columns.
type Section string

const (
	SectionContract Section = "계약조건"
	SectionOptional Section = "선택조건"
)

// Question is one static step descriptor. Visible, when set, decides
// whether the question appears given the answers so far.
type Question struct {
	ID              string
	Prompt          string
	Description     string
	Kind            InputType
	Options         []string
	RoomOptions     []string
	BathroomOptions []string
	Placeholder     string
	Section         Section
	Visible         func(map[string]Answer) bool
}

// Answer is a tagged union over input types: Kind says which of the
// per-type fields carry the value. Answers are replaced whole, never
// mutated field by field.
type Answer struct {
	Kind     InputType       `json:"kind"`
	Text     string          `json:"text,omitempty"`
	Choice   string          `json:"choice,omitempty"`
	Choices  []string        `json:"choices,omitempty"`
	Contract *ContractBudget `json:"contract,omitempty"`
	MoveIn   *MoveInChoice   `json:"moveIn,omitempty"`
	Layout   *RoomLayout     `json:"layout,omitempty"`
	Options  *OptionPicks    `json:"options,omitempty"`
	Pets     *PetDetails     `json:"pets,omitempty"`
}

// ContractBudget holds the 전세/월세 selection and its budget sub-fields.
type ContractBudget struct {
	Types        []string `json:"types"`
	Jeonse       string   `json:"jeonse,omitempty"`
	WolseDeposit string   `json:"wolseDeposit,omitempty"`
	WolseRent    string   `json:"wolseRent,omitempty"`
}

// Move-in sub-states for the date-or-negotiable input.
const (
	MoveInSpecific   = "specific"
	MoveInNegotiable = "negotiable"

	MoveInImmediate = "immediate"
	MoveInUndecided = "undecided"
)

type MoveInChoice struct {
	Mode  string `json:"mode"`
	Value string `json:"value"`
}

type RoomLayout struct {
	Rooms     string `json:"rooms"`
	Bathrooms string `json:"bathrooms"`
}

type OptionPicks struct {
	Selected []string `json:"selected"`
	Other    string   `json:"other,omitempty"`
}

// PetDetails tracks the nested pet sub-flow. Completed is set once the
// user has walked it to a terminal choice; advancing is blocked until then.
type PetDetails struct {
	HasPets       string `json:"hasPets"`
	NeedsClause   string `json:"needsClause,omitempty"`
	IncludeRepair bool   `json:"includeRepair,omitempty"`
	Completed     bool   `json:"completed"`
}

// SafetyChoice is the three-state toggle for one safety clause.
type SafetyChoice string

const (
	SafetyUnset    SafetyChoice = ""
	SafetySelected SafetyChoice = "select"
	SafetySkipped  SafetyChoice = "skip"
)

// SafetyTerms are the three independent safety-clause toggles offered on
// the summary screen, outside the question catalog.
type SafetyTerms struct {
	Registration SafetyChoice `json:"registration"`
	RightsFreeze SafetyChoice `json:"rightsFreeze"`
	OwnerAccount SafetyChoice `json:"ownerAccount"`
}

// SpecialTerm is one generated contract clause.
type SpecialTerm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SummaryRow is one line of the printed checklist table.
type SummaryRow struct {
	Label   string  `json:"label"`
	Value   string  `json:"value"`
	Section Section `json:"section"`
}
