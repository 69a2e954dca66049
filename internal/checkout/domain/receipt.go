package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	ProductID int
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Receipt acknowledges a checkout. Nothing is charged or submitted
// anywhere; the reference exists so the acknowledgment page has something
// stable to show.
type Receipt struct {
	Reference string
	Lines     []ReceiptLine
	Total     decimal.Decimal
	PlacedAt  time.Time
}
