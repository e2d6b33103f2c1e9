package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToEntity(t *testing.T) {
	b := ToEntity(testDTO)

	assert.Equal(t, "isbn", b.ISBN)
	assert.Equal(t, "title", b.Title)
	assert.Equal(t, "author", b.Author)
	assert.Equal(t, "sheets", b.Sheets)
	assert.Equal(t, "weight", b.Weight)
	assert.True(t, b.Cost.Equal(decimal.RequireFromString("0.0")))
	assert.Zero(t, b.ID)
}

func TestToDTO(t *testing.T) {
	stored := testBook
	stored.ID = 42

	d := ToDTO(stored)

	assert.Equal(t, testDTO, d)
}

func TestFromOpenLibrary(t *testing.T) {
	d := FromOpenLibrary(testDoc)

	assert.Equal(t, MissingInfo, d.ISBN)
	assert.Equal(t, "title", d.Title)
	assert.Equal(t, "name", d.Author)
	assert.Equal(t, MissingInfo, d.Sheets)
	assert.Equal(t, MissingInfo, d.Weight)
	assert.True(t, d.Cost.Equal(decimal.RequireFromString("0.0")))
}

func TestToRecords(t *testing.T) {
	assert.NotNil(t, ToRecords(nil))

	stored := testBook
	stored.ID = 7
	got := ToRecords([]Book{stored})
	assert.Equal(t, []Record{{ID: 7, DTO: testDTO}}, got)
}

func TestToDTOs(t *testing.T) {
	assert.NotNil(t, ToDTOs(nil))

	other := testBook
	other.Title = "other"
	got := ToDTOs([]Book{other, testBook})
	assert.Equal(t, "other", got[0].Title)
	assert.Equal(t, "title", got[1].Title)
}
