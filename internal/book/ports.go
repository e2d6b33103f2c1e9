package book

import (
	"context"

	"bookcatalog/internal/platform/alfabank"
	"bookcatalog/internal/platform/openlibrary"
)

//go:generate mockgen -destination=mock_repository_test.go -package=book -self_package=bookcatalog/internal/book bookcatalog/internal/book Repository

// Repository defines the contract for book data storage.
type Repository interface {
	// Create returns the id assigned to the new row.
	Create(ctx context.Context, b Book) (int64, error)
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	// Update reports false when no row has the given id.
	Update(ctx context.Context, b Book, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByAuthor(ctx context.Context, author string) ([]Book, error)
	GetByTitle(ctx context.Context, title string) (Book, error)
}

// OpenLibraryClient looks up bibliographic metadata.
type OpenLibraryClient interface {
	SearchByAuthor(ctx context.Context, author string) ([]openlibrary.Doc, error)
}

// RatesClient fetches current exchange rates.
type RatesClient interface {
	NationalRates(ctx context.Context, currencies []alfabank.Currency) ([]alfabank.NationalRate, error)
}
