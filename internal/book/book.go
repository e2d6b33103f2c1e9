package book

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned when another book already has the ISBN.
var ErrDuplicateISBN = errors.New("book with this isbn already exists")

// ErrUpstream marks failures of the bibliographic or currency services.
var ErrUpstream = errors.New("upstream service failed")

// MissingInfo fills the fields Open Library does not provide.
const MissingInfo = "info missing in openLibrary"

// Book is the persisted book record.
type Book struct {
	ID     int64
	ISBN   string
	Title  string
	Author string
	Sheets string
	Weight string
	Cost   decimal.Decimal
}

// DTO is the shape books take at the service boundary.
type DTO struct {
	ISBN   string          `json:"isbn" validate:"required,isbn"`
	Title  string          `json:"title" validate:"required,max=255"`
	Author string          `json:"author" validate:"required,max=255"`
	Sheets string          `json:"sheets" validate:"max=64"`
	Weight string          `json:"weight" validate:"max=64"`
	Cost   decimal.Decimal `json:"cost" validate:"gte=0,lte=9999999999.99,cents"`
}

// Record is a stored book together with the id that addresses it.
type Record struct {
	ID int64 `json:"id"`
	DTO
}

// ConvertedPrice is a book price expressed in one foreign currency.
type ConvertedPrice struct {
	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`
}

// PriceInCurrencies pairs a title with its price in each requested currency.
type PriceInCurrencies struct {
	Title    string           `json:"title"`
	BaseCost decimal.Decimal  `json:"base_cost"`
	Prices   []ConvertedPrice `json:"prices"`
}
