package model

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Receipt is the validated domain value the scoring engine operates on.
// Item order is kept as submitted even though scoring ignores it.
type Receipt struct {
	Retailer     string
	PurchaseDate time.Time
	PurchaseTime time.Time
	Items        []Item
	Total        Money
}

type Item struct {
	ShortDescription string
	Price            Money
}

type ReceiptInput struct {
	Retailer     string      `json:"retailer" validate:"required"`
	PurchaseDate string      `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	PurchaseTime string      `json:"purchaseTime" validate:"required,datetime=15:04"`
	Items        []ItemInput `json:"items" validate:"required,min=1,dive"`
	Total        string      `json:"total" validate:"required"`
}

type ItemInput struct {
	ShortDescription string `json:"shortDescription" validate:"required"`
	Price            string `json:"price" validate:"required"`
}
