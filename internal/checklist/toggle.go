package checklist

// Selection toggles for the multi-select input types. Each takes the
// current answer and one clicked option and returns the replacement
// answer, encoding the exclusivity rules of the form.

// TogglePropertyType toggles option in a 주거 형태 selection. 상관없음 is
// mutually exclusive with everything else: picking it clears the rest,
// and picking anything else while it is active replaces the whole
// selection with just that option.
func TogglePropertyType(current Answer, option string) Answer {
	selected := current.Choices
	switch {
	case option == PropertyAny:
		selected = []string{PropertyAny}
	case contains(selected, PropertyAny):
		selected = []string{option}
	default:
		selected = toggle(selected, option)
	}
	return Answer{Kind: InputMultiChoice, Choices: selected}
}

// ToggleFloor toggles option in a 층수 selection. 무관 clears the three
// floor preferences but leaves 엘리베이터 필수 in place; the elevator
// option toggles independently of everything; picking a floor preference
// drops 무관.
func ToggleFloor(current Answer, option string) Answer {
	selected := current.Choices
	switch option {
	case FloorElevator:
		selected = toggle(selected, option)
	case FloorAny:
		if contains(selected, FloorAny) {
			selected = remove(selected, FloorAny)
		} else {
			kept := []string{}
			if contains(selected, FloorElevator) {
				kept = append(kept, FloorElevator)
			}
			selected = append(kept, FloorAny)
		}
	default:
		selected = toggle(remove(selected, FloorAny), option)
	}
	return Answer{Kind: InputFloorPicker, Choices: selected}
}

// ToggleOption toggles option in the 필수 옵션 selection, keeping the
// free-text other field. 옵션 없어도 됨 is mutually exclusive with the
// rest and clears the other field while active.
func ToggleOption(current Answer, option string) Answer {
	var selected []string
	var other string
	if current.Options != nil {
		selected = current.Options.Selected
		other = current.Options.Other
	}

	switch {
	case option == OptionNone:
		if contains(selected, OptionNone) {
			selected = nil
		} else {
			selected = []string{OptionNone}
			other = ""
		}
	case contains(selected, OptionNone):
		selected = []string{option}
	default:
		selected = toggle(selected, option)
	}
	return Answer{Kind: InputIconOptions, Options: &OptionPicks{Selected: selected, Other: other}}
}

func toggle(list []string, v string) []string {
	if contains(list, v) {
		return remove(list, v)
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

func remove(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
