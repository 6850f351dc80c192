package support

// FAQ is one entry of the customer center FAQ.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Channel is a way to reach the customer center directly.
type Channel struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
}

var faqs = []FAQ{
	{
		Question: "청첩장 주문부터 수령까지 얼마나 걸리나요?",
		Answer:   "주문 접수 후 디자인 시안 확인까지 1~2일, 인쇄 및 제작에 3~5일, 배송에 1~2일이 소요되어 평균적으로 5~9일(영업일 기준)이 소요됩니다.",
	},
	{
		Question: "AI 디자인 추천은 어떻게 이루어지나요?",
		Answer:   "고객님의 사연을 Gemini AI가 분석하여 핵심 키워드와 분위기를 파악한 후, 그에 맞는 독창적인 디자인 컨셉과 이미지를 생성하여 추천해드립니다.",
	},
	{
		Question: "수량 변경이나 주문 취소는 가능한가요?",
		Answer:   "인쇄가 시작되기 전까지는 수량 변경 및 주문 취소가 가능합니다. 인쇄가 시작된 후에는 변경 및 취소가 어려우니 1:1 문의 게시판으로 빠르게 연락주세요.",
	},
}

var channels = []Channel{
	{Kind: "phone", Label: "전화 상담", Value: "02-1234-5678"},
	{Kind: "email", Label: "이메일 문의", Value: "contact@doyeonstory.com"},
}
