package checklist

import "strings"

// Clause boilerplate. Titles double as stable identifiers in the
// rendered checklist, so they stay verbatim.
const (
	petClauseBase   = "임차인은 반려동물을 동반하여 입주하며, 임대인은 이를 승낙함"
	petClauseRepair = ". 임차인은 반려동물로 인한 도배, 장판의 교체가 필요할 경우 퇴거 시에 교체해주기로 함"

	loanClause      = "임대인은 임차인의 전세대출에 협조하며, 물건지 사유로 대출이 불가능할 경우 기지급한 금원을 즉시 반환한다"
	insuranceClause = "임대인은 임차인의 보증보험 가입에 협조하며, 보증보험 가입이 불가능할 경우 기지급한 금원을 즉시 반환한다"

	registrationClause = "임대인은 임차인이 전입신고 및 확정일자를 취득하는 데 필요한 서류를 즉시 제공하며, 이에 협조할 의무가 있음"
	rightsFreezeClause = "임대인은 임차인의 대항력 및 우선변제권이 발생하기 전까지 해당 부동산에 대한 소유권 이전, 근저당권 설정 등 일체의 권리변동 행위를 하지 않기로 함"
	ownerAccountClause = "임차인은 보증금을 등기부등본 상 소유자인 임대인 본인 명의의 계좌로만 송금하며, 제3자 명의 계좌로의 송금은 일체 인정되지 않음"
)

// GenerateSpecialTerms derives the contract clause list from the final
// answers plus the safety toggles. Conditions are evaluated in a fixed
// order — pet, loan, insurance, free-text extras, then the three safety
// clauses — and each satisfied condition contributes exactly one clause.
func GenerateSpecialTerms(answers map[string]Answer, safety SafetyTerms) []SpecialTerm {
	terms := []SpecialTerm{}

	if pets := answers[QuestionPets].Pets; pets != nil && pets.HasPets == Yes && pets.NeedsClause == "yes" {
		content := petClauseBase
		if pets.IncludeRepair {
			content += petClauseRepair
		}
		terms = append(terms, SpecialTerm{Title: "반려동물 동반 입주", Content: content})
	}

	if answers[QuestionJeonseLoan].Choice == Yes {
		terms = append(terms, SpecialTerm{Title: "전세대출 협조", Content: loanClause})
	}

	if answers[QuestionInsurance].Choice == Yes {
		terms = append(terms, SpecialTerm{Title: "보증보험 가입 협조", Content: insuranceClause})
	}

	if extra := answers[QuestionAdditionalTerms].Text; extra != NoExtraTerms && strings.TrimSpace(extra) != "" {
		terms = append(terms, SpecialTerm{Title: "기타 특약", Content: extra})
	}

	if safety.Registration == SafetySelected {
		terms = append(terms, SpecialTerm{Title: "전입신고 및 확정일자 취득", Content: registrationClause})
	}
	if safety.RightsFreeze == SafetySelected {
		terms = append(terms, SpecialTerm{Title: "권리변동 금지", Content: rightsFreezeClause})
	}
	if safety.OwnerAccount == SafetySelected {
		terms = append(terms, SpecialTerm{Title: "임대인 명의 계좌 송금", Content: ownerAccountClause})
	}

	return terms
}
