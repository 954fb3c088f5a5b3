package domain

import "testing"

func TestFilters_Match(t *testing.T) {
	tx := &Transaction{
		Person: "김철수",
		Type:   TransactionTypeCommon,
		Card:   "**** 4242",
	}

	tests := []struct {
		name    string
		filters Filters
		want    bool
	}{
		{"all open", Filters{Type: FilterAll, Person: FilterAll, Card: FilterAll}, true},
		{"type match", Filters{Type: "common", Person: FilterAll, Card: FilterAll}, true},
		{"type mismatch", Filters{Type: "personal", Person: FilterAll, Card: FilterAll}, false},
		{"person match", Filters{Type: FilterAll, Person: "김철수", Card: FilterAll}, true},
		{"person mismatch", Filters{Type: FilterAll, Person: "이영희", Card: FilterAll}, false},
		{"card match", Filters{Type: FilterAll, Person: FilterAll, Card: "**** 4242"}, true},
		{"card mismatch", Filters{Type: FilterAll, Person: FilterAll, Card: "**** 5555"}, false},
		{"all dimensions", Filters{Type: "common", Person: "김철수", Card: "**** 4242"}, true},
		{"one dimension fails", Filters{Type: "common", Person: "김철수", Card: "**** 5555"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Match(tx); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCard_Label(t *testing.T) {
	card := Card{Name: "법인카드 1", LastFourDigits: "4242"}
	if got := card.Label(); got != "**** 4242" {
		t.Errorf("Label() = %s, want **** 4242", got)
	}
}
