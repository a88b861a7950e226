package checklist

import (
	"fmt"
	"strings"
)

// Trailing interrogative/imperative suffixes stripped from prompts to
// produce short row labels.
var labelSuffixes = []string{
	"을 입력해주세요",
	"를 선택해주세요",
	"을 선택해주세요",
	"가 있나요?",
	"인가요?",
	"이 필요하신가요?",
	"을 키우시나요?",
	"을 받을 예정인가요?",
	"에 가입할 예정인가요?",
}

// BuildSummary renders one row per visible non-empty answer, in catalog
// order. Empty answers (a blank text, a choiceless selection) produce no
// row. The free-text extra-terms question is omitted — it surfaces
// through GenerateSpecialTerms instead of the table.
func BuildSummary(answers map[string]Answer) []SummaryRow {
	rows := []SummaryRow{}
	for _, q := range VisibleQuestions(answers) {
		a, ok := answers[q.ID]
		if !ok || q.ID == QuestionAdditionalTerms {
			continue
		}
		if a.Kind != q.Kind || !answerComplete(q.Kind, a) {
			continue
		}
		rows = append(rows, SummaryRow{
			Label:   summaryLabel(q.Prompt),
			Value:   summaryValue(q, a),
			Section: q.Section,
		})
	}
	return rows
}

// SplitBySection partitions rows into the two printed columns, keeping
// their relative order.
func SplitBySection(rows []SummaryRow) (contract, optional []SummaryRow) {
	for _, r := range rows {
		if r.Section == SectionOptional {
			optional = append(optional, r)
		} else {
			contract = append(contract, r)
		}
	}
	return contract, optional
}

func summaryLabel(prompt string) string {
	for _, suffix := range labelSuffixes {
		prompt = strings.ReplaceAll(prompt, suffix, "")
	}
	return prompt
}

func summaryValue(q Question, a Answer) string {
	switch q.Kind {
	case InputContractBudget:
		return contractValue(a.Contract)
	case InputMoveInDate:
		return moveInValue(a.MoveIn)
	case InputRoomLayout:
		return layoutValue(a.Layout)
	case InputMultiChoice, InputFloorPicker:
		return strings.Join(a.Choices, ", ")
	case InputPetDetails:
		return petsValue(a.Pets)
	case InputIconOptions:
		return optionsValue(a.Options)
	case InputSingleChoice:
		return a.Choice
	default:
		return a.Text
	}
}

func contractValue(c *ContractBudget) string {
	if c == nil {
		return ""
	}
	typeStr := strings.Join(c.Types, ", ")
	var details []string
	if contains(c.Types, ContractJeonse) && c.Jeonse != "" {
		details = append(details, fmt.Sprintf("전세 보증금: %s", c.Jeonse))
	}
	if contains(c.Types, ContractWolse) && c.WolseDeposit != "" {
		rent := c.WolseRent
		if rent == "" {
			rent = "-"
		}
		details = append(details, fmt.Sprintf("월세 보증금: %s, 월세: %s", c.WolseDeposit, rent))
	}
	if len(details) == 0 {
		return typeStr
	}
	return fmt.Sprintf("%s (%s)", typeStr, strings.Join(details, " / "))
}

func moveInValue(m *MoveInChoice) string {
	if m == nil {
		return "-"
	}
	if m.Mode == MoveInNegotiable {
		if m.Value == MoveInImmediate {
			return "즉시입주 가능"
		}
		return "입주계획 미정"
	}
	if m.Value == "" {
		return "-"
	}
	return m.Value
}

func layoutValue(l *RoomLayout) string {
	rooms, bathrooms := "-", "-"
	if l != nil {
		if l.Rooms != "" {
			rooms = l.Rooms
		}
		if l.Bathrooms != "" {
			bathrooms = l.Bathrooms
		}
	}
	return fmt.Sprintf("방 %s / 화장실 %s", rooms, bathrooms)
}

func petsValue(p *PetDetails) string {
	if p == nil || p.HasPets != Yes {
		return No
	}
	if p.NeedsClause == "yes" {
		return "예 (특약 포함)"
	}
	return "예 (특약 미포함)"
}

func optionsValue(o *OptionPicks) string {
	if o == nil {
		return "-"
	}
	text := strings.Join(o.Selected, ", ")
	if o.Other != "" {
		if text != "" {
			text += ", 기타: " + o.Other
		} else {
			text = "기타: " + o.Other
		}
	}
	if text == "" {
		return "-"
	}
	return text
}
