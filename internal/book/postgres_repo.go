package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

const selectColumns = `SELECT id, isbn, title, author, sheets, weight, cost::text FROM books`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, b Book) (int64, error) {
	const sql = `
		INSERT INTO books (isbn, title, author, sheets, weight, cost)
		VALUES ($1, $2, $3, $4, $5, $6::numeric)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var id int64
	err := r.db.QueryRow(timeoutCtx, sql, b.ISBN, b.Title, b.Author, b.Sheets, b.Weight, b.Cost.String()).Scan(&id)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return id, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, selectColumns+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanOne(r.db.QueryRow(timeoutCtx, selectColumns+` WHERE id = $1`, id))
}

func (r *PostgresRepo) Update(ctx context.Context, b Book, id int64) (bool, error) {
	const sql = `
		UPDATE books
		SET isbn = $1, title = $2, author = $3, sheets = $4, weight = $5, cost = $6::numeric
		WHERE id = $7`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, b.ISBN, b.Title, b.Author, b.Sheets, b.Weight, b.Cost.String(), id)
	if err != nil {
		return false, mapWriteErr(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) ListByAuthor(ctx context.Context, author string) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, selectColumns+` WHERE author = $1 ORDER BY id`, author)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

// GetByTitle returns the oldest book with the given title.
func (r *PostgresRepo) GetByTitle(ctx context.Context, title string) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanOne(r.db.QueryRow(timeoutCtx, selectColumns+` WHERE title = $1 ORDER BY id LIMIT 1`, title))
}

func scanBook(row pgx.Row) (Book, error) {
	var (
		b    Book
		cost string
	)
	if err := row.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Sheets, &b.Weight, &cost); err != nil {
		return Book{}, err
	}
	d, err := decimal.NewFromString(cost)
	if err != nil {
		return Book{}, fmt.Errorf("book %d: parse cost %q: %w", b.ID, cost, err)
	}
	b.Cost = d
	return b, nil
}

func scanOne(row pgx.Row) (Book, error) {
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func collectBooks(rows pgx.Rows) ([]Book, error) {
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateISBN
	}
	return err
}
