package checklist

// Option literals that carry toggle semantics.
const (
	Yes = "예"
	No  = "아니오"

	ContractJeonse = "전세"
	ContractWolse  = "월세"

	PropertyAny = "상관없음"

	FloorLow      = "저층 선호"
	FloorMid      = "중층 선호"
	FloorHigh     = "고층 선호"
	FloorElevator = "엘리베이터 필수"
	FloorAny      = "무관"

	OptionNone = "옵션 없어도 됨"

	ParkingRequired = "필수"
	ParkingPrefer   = "있으면 좋음"
	ParkingNone     = "불필요"

	// NoExtraTerms is the sentinel stored when the user explicitly has no
	// additional terms to add.
	NoExtraTerms = "none"
)

// Question IDs referenced outside the catalog.
const (
	QuestionParking         = "parking"
	QuestionParkingCount    = "parkingCount"
	QuestionPets            = "pets"
	QuestionJeonseLoan      = "jeonseeLoan"
	QuestionInsurance       = "depositInsurance"
	QuestionAdditionalTerms = "additionalTerms"
)

var catalog = []Question{
	{
		ID:          "location",
		Prompt:      "희망 지역을 입력해주세요",
		Description: "시/구/동, 동네 이름, 또는 지하철 노선(예: 7호선 라인)까지 자유롭게 작성해주세요.",
		Kind:        InputFreeText,
		Placeholder: "예: 서울시 강남구, 7호선 라인, 판교역 근처",
		Section:     SectionContract,
	},
	{
		ID:          "contractType",
		Prompt:      "계약 유형과 예산을 입력해주세요",
		Description: "전세는 보증금만, 월세는 보증금+월세를 내는 계약이에요. 전세와 월세 모두 고려 중이라면 둘 다 선택할 수 있어요.",
		Kind:        InputContractBudget,
		Options:     []string{ContractJeonse, ContractWolse},
		Section:     SectionContract,
	},
	{
		ID:          "moveInDate",
		Prompt:      "희망 입주 시기는 언제인가요?",
		Description: "조건에 맞는 집을 찾아도 입주시기가 맞지 않으면 헛수고가 될 수 있어요. 구체적인 시기를 입력하거나 협의 가능 여부를 선택해주세요.",
		Kind:        InputMoveInDate,
		Placeholder: "예: 2025년 6월, 7월 중순, 2025년 여름",
		Section:     SectionContract,
	},
	{
		ID:          "contractPeriod",
		Prompt:      "계약 기간은 어떻게 하시겠어요?",
		Description: "법적으로 2년이 기본이지만, 협의를 통해 조정할 수 있어요.",
		Kind:        InputSingleChoice,
		Options:     []string{"2년 (기본)", "1년", "1년 미만의 단기임대"},
		Section:     SectionContract,
	},
	{
		ID:          "propertyType",
		Prompt:      "주거 형태를 선택해주세요",
		Description: "원하시는 건물 유형을 선택해주세요.",
		Kind:        InputMultiChoice,
		Options:     []string{"아파트", "빌라/연립", "오피스텔", "단독/다가구", PropertyAny},
		Section:     SectionContract,
	},
	{
		ID:          "managementFee",
		Prompt:      "예상 관리비는 어느 정도인가요?",
		Description: "아파트나 오피스텔은 평균 10~20만원 정도의 관리비가 나오고, 빌라나 다가구주택은 10만원 미만의 관리비가 나올 수 있어요.",
		Kind:        InputFreeText,
		Placeholder: "예: 10만원 정도, 15~20만원",
		Section:     SectionContract,
	},
	{
		ID:              "roomsAndBathrooms",
		Prompt:          "방과 화장실 개수를 선택해주세요",
		Description:     "거실을 제외한 방 개수와 화장실 개수예요.",
		Kind:            InputRoomLayout,
		RoomOptions:     []string{"원룸", "1개", "2개", "3개 이상"},
		BathroomOptions: []string{"1개", "2개", "3개 이상"},
		Section:         SectionContract,
	},
	{
		ID:          "floor",
		Prompt:      "층수 관련 조건이 있나요?",
		Description: "원하시는 층수 조건을 선택해주세요. 건물 이미지를 클릭하여 선택할 수 있어요.",
		Kind:        InputFloorPicker,
		Options:     []string{FloorLow, FloorMid, FloorHigh, FloorElevator, FloorAny},
		Section:     SectionContract,
	},
	{
		ID:          QuestionParking,
		Prompt:      "주차 공간이 필요하신가요?",
		Description: "본인 또는 가족의 차량 주차 여부예요.",
		Kind:        InputSingleChoice,
		Options:     []string{ParkingRequired, ParkingPrefer, ParkingNone},
		Section:     SectionContract,
	},
	{
		ID:          QuestionParkingCount,
		Prompt:      "주차 대수는 몇 대인가요?",
		Description: "필요한 주차 공간의 수를 선택해주세요. 주차 공간만큼 관리비에 추가 비용이 나올 수 있어요.",
		Kind:        InputSingleChoice,
		Options:     []string{"1대", "2대 이상"},
		Section:     SectionContract,
		Visible: func(answers map[string]Answer) bool {
			parking := answers[QuestionParking].Choice
			return parking == ParkingRequired || parking == ParkingPrefer
		},
	},
	{
		ID:          "options",
		Prompt:      "필수 옵션을 모두 선택해주세요",
		Description: "계약 시 꼭 갖춰져 있어야 하는 항목을 선택해주세요.",
		Kind:        InputIconOptions,
		Options: []string{
			"에어컨", "냉장고", "세탁기", "가스레인지/인덕션",
			"전자레인지", "침대", "책상", "옷장", OptionNone,
		},
		Section: SectionContract,
	},
	{
		ID:          QuestionPets,
		Prompt:      "반려동물을 키우시나요?",
		Description: "반려동물 동반 입주 가능 여부를 특약으로 명시해야 할 수도 있어요.",
		Kind:        InputPetDetails,
		Options:     []string{Yes, No},
		Section:     SectionOptional,
	},
	{
		ID:          QuestionJeonseLoan,
		Prompt:      "전세대출을 받을 예정인가요?",
		Description: "전세대출이 필요한 경우, 임대인의 협조가 필요할 수 있으며, 전세대출 없이 입주가 불가능한 상황이라면 전세대출이 부결되었을 때 임대인에게 지급한 금액을 돌려받을 수 있도록 특약에 기재하는 것이 좋아요.",
		Kind:        InputSingleChoice,
		Options:     []string{Yes, No},
		Section:     SectionOptional,
	},
	{
		ID:          QuestionInsurance,
		Prompt:      "보증보험에 가입할 예정인가요?",
		Description: "보증보험 가입 시 임대인의 협조가 필요해요.",
		Kind:        InputSingleChoice,
		Options:     []string{Yes, No},
		Section:     SectionOptional,
	},
	{
		ID:          QuestionAdditionalTerms,
		Prompt:      "추가로 특약에 넣고 싶은 내용이 있나요?",
		Description: "위에서 다루지 않은 특별한 조건이 있다면 자유롭게 작성해주세요.",
		Kind:        InputFreeTextOrNone,
		Placeholder: "예: 공과금 분담, 주변 소음 관련 사항 등",
		Section:     SectionOptional,
	},
}

// Catalog returns the full ordered question list. The slice header is
// shared; callers must not mutate it.
func Catalog() []Question {
	return catalog
}

// QuestionByID looks a question up in the catalog regardless of its
// current visibility.
func QuestionByID(id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
