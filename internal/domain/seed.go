package domain

import "github.com/shopspring/decimal"

// Demonstration dataset loaded when all three collections are empty.
// Kept verbatim so test fixtures stay stable.

func krw(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func krwPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// SeedTransactions returns the demo transaction list, most recent first.
func SeedTransactions() []*Transaction {
	return []*Transaction{
		{ID: "1", Date: "2026-01-12", Merchant: "스타벅스", Person: "김철수", Type: TransactionTypeCommon, Card: "**** 4242", Amount: krw(45500), Note: "팀 커피 미팅"},
		{ID: "2", Date: "2026-01-11", Merchant: "쿠팡", Person: "이영희", Type: TransactionTypeCommon, Card: "**** 5555", Amount: krw(324900), Note: "사무용품 구매"},
		{ID: "3", Date: "2026-01-10", Merchant: "카카오택시", Person: "박민수", Type: TransactionTypePersonal, Card: "**** 6789", Amount: krw(28750), Note: "공항 이동"},
		{ID: "4", Date: "2026-01-09", Merchant: "대한항공", Person: "김철수", Type: TransactionTypeCommon, Card: "**** 4242", Amount: krw(567000), Note: "서울-제주 출장"},
		{ID: "5", Date: "2026-01-08", Merchant: "신라호텔", Person: "이영희", Type: TransactionTypeCommon, Card: "**** 5555", Amount: krw(892500), Note: "컨퍼런스 숙박"},
		{ID: "6", Date: "2026-01-07", Merchant: "Adobe", Person: "박민수", Type: TransactionTypeCommon, Card: "**** 4242", Amount: krw(54990), Note: "Creative Cloud 구독"},
		{ID: "7", Date: "2026-01-06", Merchant: "이마트", Person: "김철수", Type: TransactionTypePersonal, Card: "**** 6789", Amount: krw(156320), Note: "식료품"},
		{ID: "8", Date: "2026-01-05", Merchant: "LinkedIn", Person: "이영희", Type: TransactionTypeCommon, Card: "**** 5555", Amount: krw(79990), Note: "프리미엄 구독"},
		{ID: "9", Date: "2026-01-04", Merchant: "GS25", Person: "박민수", Type: TransactionTypePersonal, Card: "**** 6789", Amount: krw(12300), Note: "간식"},
		{ID: "10", Date: "2026-01-03", Merchant: "Zoom", Person: "김철수", Type: TransactionTypeCommon, Card: "**** 4242", Amount: krw(165000), Note: "화상회의 구독"},
	}
}

// SeedPeople returns the demo people list.
func SeedPeople() []*Person {
	return []*Person{
		{ID: "1", Name: "김철수", Team: "개발팀", Active: true, DefaultCard: "**** 4242", MonthlyBudget: krwPtr(3000000), Notes: "팀 리더"},
		{ID: "2", Name: "이영희", Team: "마케팅팀", Active: true, DefaultCard: "**** 5555", MonthlyBudget: krwPtr(2500000), Notes: "마케팅 매니저"},
		{ID: "3", Name: "박민수", Team: "영업팀", Active: true, DefaultCard: "**** 6789", MonthlyBudget: krwPtr(2000000), Notes: "영업 담당"},
		{ID: "4", Name: "최지은", Team: "디자인팀", Active: true, DefaultCard: "**** 4242", MonthlyBudget: krwPtr(1500000), Notes: "UI/UX 디자이너"},
		{ID: "5", Name: "정우성", Team: "개발팀", Active: true, DefaultCard: "**** 5555", MonthlyBudget: krwPtr(2000000), Notes: "백엔드 개발자"},
	}
}

// SeedCards returns the demo card list. Card "1" starts as the default.
func SeedCards() []*Card {
	return []*Card{
		{ID: "1", Name: "법인카드 1", LastFourDigits: "4242", Active: true, IsDefault: true},
		{ID: "2", Name: "법인카드 2", LastFourDigits: "5555", Active: true, IsDefault: false},
		{ID: "3", Name: "법인카드 3", LastFourDigits: "6789", Active: true, IsDefault: false},
	}
}
