package service

import (
	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionAdder is the slice of the expense store the import flow needs.
type TransactionAdder interface {
	AddTransaction(t domain.Transaction) *domain.Transaction
}

// Import provider ids.
const (
	ProviderInternal = "internal"
	ProviderSamsung  = "samsung"
	ProviderCSV      = "csv"
	ProviderBank     = "bank"
)

// ImportService implements the mocked external-source import flow: list
// providers, fetch a fixed candidate set, and commit reviewed entries into
// the expense store. No provider performs real network integration.
type ImportService struct {
	store TransactionAdder
}

// NewImportService creates a new ImportService.
func NewImportService(store TransactionAdder) *ImportService {
	return &ImportService{store: store}
}

// Providers returns the import source catalog.
func (s *ImportService) Providers() []domain.ImportProvider {
	return []domain.ImportProvider{
		{
			ID:          ProviderInternal,
			Name:        "사내 시스템 연동",
			Description: "내부 API를 통해 사용내역을 자동으로 불러옵니다",
			Requirements: []string{
				"내부 API 엔드포인트 설정",
				"API 키 발급",
			},
			Available: true,
		},
		{
			ID:          ProviderSamsung,
			Name:        "Samsung Pay",
			Description: "Import card transactions from Samsung Pay",
			Requirements: []string{
				"Samsung Knox API 액세스 필요",
				"OAuth 2.0 인증",
				"Samsung과의 파트너십 계약",
				"사용자의 거래 데이터 액세스 동의",
			},
			Available: false,
		},
		{
			ID:          ProviderCSV,
			Name:        "CSV 업로드",
			Description: "CSV 형식의 카드 명세서를 업로드합니다",
			Requirements: []string{
				"CSV 파일 컬럼: 날짜, 상호, 금액, 카드",
				"날짜 형식: YYYY-MM-DD",
				"금액은 숫자로 입력",
			},
			Available: false,
		},
		{
			ID:          ProviderBank,
			Name:        "은행 연동",
			Description: "Plaid 또는 유사한 은행 연동 서비스를 통해 연결합니다",
			Requirements: []string{
				"Plaid Link 통합 필요",
				"은행 계좌 인증 정보",
				"다중 인증 (MFA)",
				"토큰 처리를 위한 API 백엔드",
			},
			Available: false,
		},
	}
}

// FetchCandidates returns the provider's mock candidate list with fresh ids.
func (s *ImportService) FetchCandidates(providerID string) ([]domain.ImportTransaction, error) {
	var candidates []domain.ImportTransaction
	switch providerID {
	case ProviderInternal:
		candidates = []domain.ImportTransaction{
			{Date: "2026-01-13", Merchant: "스타벅스", Amount: decimal.NewFromInt(25000), Card: "**** 4242", Selected: true},
			{Date: "2026-01-12", Merchant: "GS25", Amount: decimal.NewFromInt(8500), Card: "**** 5555", Selected: true},
			{Date: "2026-01-11", Merchant: "쿠팡", Amount: decimal.NewFromInt(145000), Card: "**** 4242", Selected: true},
		}
	case ProviderSamsung, ProviderCSV, ProviderBank:
		candidates = []domain.ImportTransaction{
			{Date: "2026-01-10", Merchant: "이마트", Amount: decimal.NewFromInt(125990), Card: "**** 4242", Category: "쇼핑"},
			{Date: "2026-01-09", Merchant: "GS칼텍스", Amount: decimal.NewFromInt(45000), Card: "**** 5555", Category: "교통"},
			{Date: "2026-01-08", Merchant: "코스트코", Amount: decimal.NewFromInt(234500), Card: "**** 4242", Category: "쇼핑"},
		}
	default:
		return nil, domain.ErrUnknownProvider
	}

	for i := range candidates {
		candidates[i].ID = uuid.New().String()
	}
	return candidates, nil
}

// Commit registers the reviewed entries as transactions. Only entries that
// are selected and fully assigned (person and type) are imported; the rest
// are skipped. Returns the created transactions.
func (s *ImportService) Commit(entries []domain.ImportTransaction) []*domain.Transaction {
	imported := make([]*domain.Transaction, 0, len(entries))
	for _, e := range entries {
		if !e.Selected || e.Person == "" {
			continue
		}
		if e.Type != domain.TransactionTypeCommon && e.Type != domain.TransactionTypePersonal {
			continue
		}
		note := "가져온 내역"
		if e.Category != "" {
			note = e.Category + "에서 가져옴"
		}
		imported = append(imported, s.store.AddTransaction(domain.Transaction{
			Date:     e.Date,
			Merchant: e.Merchant,
			Person:   e.Person,
			Type:     e.Type,
			Card:     e.Card,
			Amount:   e.Amount,
			Note:     note,
		}))
	}
	return imported
}
