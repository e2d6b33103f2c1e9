package book

import (
	"bookcatalog/internal/platform/openlibrary"

	"github.com/shopspring/decimal"
)

// ToEntity converts a DTO into a record ready to persist.
func ToEntity(d DTO) Book {
	return Book{
		ISBN:   d.ISBN,
		Title:  d.Title,
		Author: d.Author,
		Sheets: d.Sheets,
		Weight: d.Weight,
		Cost:   d.Cost,
	}
}

// ToDTO converts a stored record into its DTO. The surrogate ID is dropped.
func ToDTO(b Book) DTO {
	return DTO{
		ISBN:   b.ISBN,
		Title:  b.Title,
		Author: b.Author,
		Sheets: b.Sheets,
		Weight: b.Weight,
		Cost:   b.Cost,
	}
}

// ToRecord keeps the surrogate ID next to the DTO.
func ToRecord(b Book) Record {
	return Record{ID: b.ID, DTO: ToDTO(b)}
}

func ToRecords(books []Book) []Record {
	out := make([]Record, 0, len(books))
	for _, b := range books {
		out = append(out, ToRecord(b))
	}
	return out
}

// ToDTOs keeps the order of books.
func ToDTOs(books []Book) []DTO {
	out := make([]DTO, 0, len(books))
	for _, b := range books {
		out = append(out, ToDTO(b))
	}
	return out
}

// FromOpenLibrary converts a search result. Open Library knows nothing about
// isbn, sheets, weight or cost.
func FromOpenLibrary(doc openlibrary.Doc) DTO {
	return DTO{
		ISBN:   MissingInfo,
		Title:  doc.Title,
		Author: doc.Author.Name,
		Sheets: MissingInfo,
		Weight: MissingInfo,
		Cost:   decimal.Zero,
	}
}
