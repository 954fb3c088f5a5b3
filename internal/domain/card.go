package domain

// CardDigitsLength is the required length of a card's trailing digits.
const CardDigitsLength = 4

// Card is a corporate card. At most one card has IsDefault set at any time;
// SetDefaultCard on the store is the only operation that guarantees this.
type Card struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastFourDigits string `json:"lastFourDigits"`
	Active         bool   `json:"active"`
	IsDefault      bool   `json:"isDefault"`
}

// Label returns the display label transactions reference, e.g. "**** 4242".
func (c *Card) Label() string {
	return "**** " + c.LastFourDigits
}

// CardPatch carries a partial update. Nil fields are left unchanged.
// Note that setting IsDefault through a patch bypasses the single-default
// invariant; use the store's SetDefaultCard to keep it.
type CardPatch struct {
	Name           *string
	LastFourDigits *string
	Active         *bool
	IsDefault      *bool
}
