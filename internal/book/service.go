package book

import (
	"context"
	"fmt"
	"log/slog"

	"bookcatalog/internal/platform/alfabank"

	"github.com/shopspring/decimal"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	ol     OpenLibraryClient
	rates  RatesClient
	logger *slog.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, ol OpenLibraryClient, rates RatesClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, ol: ol, rates: rates, logger: logger}
}

// Create stores a new book and returns its id.
func (s *Service) Create(ctx context.Context, d DTO) (int64, error) {
	return s.repo.Create(ctx, ToEntity(d))
}

// ReadAll returns every stored book in repository order.
func (s *Service) ReadAll(ctx context.Context) ([]DTO, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToDTOs(books), nil
}

// List is ReadAll with each book's id.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToRecords(books), nil
}

// GetByID returns a single stored book.
func (s *Service) GetByID(ctx context.Context, id int64) (Record, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return ToRecord(b), nil
}

// Update replaces the book with the given id. It returns false when there is
// no such book.
func (s *Service) Update(ctx context.Context, d DTO, id int64) (bool, error) {
	return s.repo.Update(ctx, ToEntity(d), id)
}

// Delete removes the book with the given id. It returns false when there is
// no such book.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// ReadFromOpenLibrary returns what Open Library knows about author's books.
func (s *Service) ReadFromOpenLibrary(ctx context.Context, author string) ([]DTO, error) {
	docs, err := s.ol.SearchByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	out := make([]DTO, 0, len(docs))
	for _, doc := range docs {
		out = append(out, FromOpenLibrary(doc))
	}
	return out, nil
}

// ReadByAuthorFromDBAndOpenLibrary returns Open Library results followed by
// stored books for author. Duplicates are kept.
func (s *Service) ReadByAuthorFromDBAndOpenLibrary(ctx context.Context, author string) ([]DTO, error) {
	external, err := s.ReadFromOpenLibrary(ctx, author)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.ListByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("merged author lookup",
		"author", author,
		"open_library", len(external),
		"stored", len(stored),
	)
	return append(external, ToDTOs(stored)...), nil
}

// GetPriceByTitle returns the cost of the book titled title.
func (s *Service) GetPriceByTitle(ctx context.Context, title string) (decimal.Decimal, error) {
	b, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Cost, nil
}

// GetPriceByTitleInCurrencies converts the cost of the book titled title into
// each requested currency: cost * rate / quantity, rounded to cents.
func (s *Service) GetPriceByTitleInCurrencies(ctx context.Context, title string, currencies []alfabank.Currency) (PriceInCurrencies, error) {
	b, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return PriceInCurrencies{}, err
	}

	rates, err := s.rates.NationalRates(ctx, currencies)
	if err != nil {
		return PriceInCurrencies{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	prices := make([]ConvertedPrice, 0, len(rates))
	for _, r := range rates {
		prices = append(prices, ConvertedPrice{
			Currency: r.ISO,
			Price:    b.Cost.Mul(r.PerUnit()).Round(2),
		})
	}

	return PriceInCurrencies{
		Title:    b.Title,
		BaseCost: b.Cost,
		Prices:   prices,
	}, nil
}
