package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/store"
	"github.com/pviana/bookshelf/internal/store/memorystore"
)

func newBookService(t *testing.T) (*BookService, *memorystore.Store) {
	t.Helper()
	s := memorystore.New()
	return NewBookService(s), s
}

func TestBookService_Create_Defaults(t *testing.T) {
	svc, _ := newBookService(t)

	book, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert"})

	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, entities.StatusWantToRead, book.Status)
	assert.Equal(t, 0, book.CurrentPage)
}

func TestBookService_Create_RequiresTitleAndAuthor(t *testing.T) {
	svc, _ := newBookService(t)

	cases := []struct {
		name  string
		input CreateBookInput
	}{
		{"missing author", CreateBookInput{Title: "Dune"}},
		{"missing title", CreateBookInput{Author: "Herbert"}},
		{"blank title", CreateBookInput{Title: "   ", Author: "Herbert"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.input)
			var validation ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestBookService_Create_RejectsInvalidFields(t *testing.T) {
	svc, _ := newBookService(t)

	_, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Rating: 6})
	var validation ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Status: "FINISHED"})
	assert.ErrorAs(t, err, &validation)

	_, err = svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Pages: 100, CurrentPage: 150})
	assert.ErrorAs(t, err, &validation)
}

func TestBookService_Create_GenreMustExist(t *testing.T) {
	svc, s := newBookService(t)

	_, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Genre: "Fantasy"})
	assert.ErrorIs(t, err, ErrGenreMissing)

	require.NoError(t, s.UpsertGenre("Fantasy"))

	book, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Genre: "Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", book.GenreName)
}

func TestBookService_Create_RoundTrip(t *testing.T) {
	svc, _ := newBookService(t)

	created, err := svc.Create(CreateBookInput{
		Title:  "Dune",
		Author: "Herbert",
		Year:   1965,
		Pages:  412,
		Rating: 5,
	})
	require.NoError(t, err)

	found, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Dune", found.Title)
	assert.Equal(t, 1965, found.Year)
	assert.Equal(t, 412, found.Pages)
	assert.Equal(t, 5, found.Rating)
}

func TestBookService_Get_NotFound(t *testing.T) {
	svc, _ := newBookService(t)

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBookService_List_Filters(t *testing.T) {
	svc, s := newBookService(t)
	require.NoError(t, s.UpsertGenre("Fantasy"))
	require.NoError(t, s.UpsertGenre("History"))

	_, err := svc.Create(CreateBookInput{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Genre: "Fantasy"})
	require.NoError(t, err)
	_, err = svc.Create(CreateBookInput{Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "History"})
	require.NoError(t, err)

	t.Run("by genre", func(t *testing.T) {
		books, err := svc.List(BookFilter{Genre: "Fantasy"})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "The Fellowship of the Ring", books[0].Title)
	})

	t.Run("by query on author, case-insensitive", func(t *testing.T) {
		books, err := svc.List(BookFilter{Query: "tolkien"})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "J.R.R. Tolkien", books[0].Author)
	})

	t.Run("by query on title", func(t *testing.T) {
		books, err := svc.List(BookFilter{Query: "sapi"})
		require.NoError(t, err)
		require.Len(t, books, 1)
	})

	t.Run("no match", func(t *testing.T) {
		books, err := svc.List(BookFilter{Query: "asimov"})
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookService_Update_PatchSemantics(t *testing.T) {
	svc, _ := newBookService(t)

	created, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Pages: 412})
	require.NoError(t, err)

	status := entities.StatusReading
	current := 50
	updated, err := svc.Update(created.ID, store.BookPatch{Status: &status, CurrentPage: &current})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusReading, updated.Status)
	assert.Equal(t, 50, updated.CurrentPage)
	assert.Equal(t, "Dune", updated.Title)
}

func TestBookService_Update_ValidatesMergedRecord(t *testing.T) {
	svc, _ := newBookService(t)

	created, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert", Pages: 412})
	require.NoError(t, err)

	// The merged record still carries Pages=412, so this must fail
	current := 500
	_, err = svc.Update(created.ID, store.BookPatch{CurrentPage: &current})
	var validation ValidationError
	assert.ErrorAs(t, err, &validation)

	blank := "  "
	_, err = svc.Update(created.ID, store.BookPatch{Title: &blank})
	assert.ErrorAs(t, err, &validation)
}

func TestBookService_Update_NotFound(t *testing.T) {
	svc, _ := newBookService(t)

	title := "x"
	_, err := svc.Update("missing", store.BookPatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBookService_Update_GenreMustExist(t *testing.T) {
	svc, _ := newBookService(t)

	created, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	genre := "Fantasy"
	_, err = svc.Update(created.ID, store.BookPatch{Genre: &genre})
	assert.ErrorIs(t, err, ErrGenreMissing)
}

func TestBookService_Delete(t *testing.T) {
	svc, _ := newBookService(t)

	created, err := svc.Create(CreateBookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	before, err := svc.List(BookFilter{})
	require.NoError(t, err)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	after, err := svc.List(BookFilter{})
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)

	deleted, err = svc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
