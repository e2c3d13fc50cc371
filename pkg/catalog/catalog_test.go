package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// newTestCatalog creates an empty catalog backed by a file in a temp dir.
func newTestCatalog(t *testing.T, name string, opts ...Option) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	opts = append([]Option{WithPath(path), WithLogger(logging.NewNopLogger())}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	require.True(t, c.IsEmpty())
	return c
}

// seed adds books and fails the test on any error.
func seed(t *testing.T, c *Catalog, books ...[3]string) {
	t.Helper()
	for _, b := range books {
		_, err := c.Add(b[0], b[1], b[2])
		require.NoError(t, err)
	}
}

func TestNewMissingFileIsEmpty(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, FormatJSON, c.Format())

	_, err := os.Stat(c.Path())
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestNewMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1,`), 0o644))

	_, err := New(WithPath(path), WithLogger(logging.NewNopLogger()))
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Contains(t, err.Error(), path)
}

func TestNewInvalidFormat(t *testing.T) {
	_, err := New(WithFormat(Format(42)))
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAdd(t *testing.T) {
	c := newTestCatalog(t, "library.json")

	tests := []struct {
		title, author, year string
		wantID              int
	}{
		{"The Hobbit", "J.R.R. Tolkien", "1937", 1},
		{"  Dune ", " Frank Herbert ", " 1965 ", 2},
		{"Война и мир", "Лев Толстой", "1869", 3},
	}

	for _, tt := range tests {
		before := c.Len()
		book, err := c.Add(tt.title, tt.author, tt.year)
		require.NoError(t, err)
		assert.Equal(t, before+1, c.Len())
		assert.Equal(t, tt.wantID, book.ID)
		assert.Equal(t, StatusAvailable, book.Status)
	}

	books, err := c.List()
	require.NoError(t, err)
	assert.Equal(t, "Dune", books[1].Title)
	assert.Equal(t, "Frank Herbert", books[1].Author)
	assert.Equal(t, 1965, books[1].Year)
}

func TestAddValidation(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c, [3]string{"T", "A", "2000"})

	tests := []struct {
		name                string
		title, author, year string
		field               string
	}{
		{"empty title", "", "A", "2020", "title"},
		{"blank title", "   ", "A", "2020", "title"},
		{"empty author", "T", "", "2020", "author"},
		{"year not a number", "T", "A", "not-a-number", "year"},
		{"empty year", "T", "A", "", "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Add(tt.title, tt.author, tt.year)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var vErr *errors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, 1, c.Len())
		})
	}
}

func TestDelete(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c,
		[3]string{"A", "X", "2001"},
		[3]string{"B", "Y", "2002"},
		[3]string{"C", "Z", "2003"},
	)

	removed, err := c.Delete("2")
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Title)
	assert.Equal(t, 2, c.Len())

	_, err = c.Delete("2")
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 2, c.Len())

	_, err = c.Delete("two")
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 2, c.Len())

	reloaded, err := New(WithPath(c.Path()), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	books, err := reloaded.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, []string{books[0].Title, books[1].Title})
}

func TestDeleteRemovesFirstDuplicate(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c,
		[3]string{"A", "X", "2001"},
		[3]string{"B", "Y", "2002"},
	)

	_, err := c.Delete("1")
	require.NoError(t, err)

	// len+1 hands out id 2 again.
	dup, err := c.Add("C", "Z", "2003")
	require.NoError(t, err)
	assert.Equal(t, 2, dup.ID)

	removed, err := c.Delete("2")
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Title)

	books, err := c.List()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "C", books[0].Title)
}

func TestMonotonicIDs(t *testing.T) {
	c := newTestCatalog(t, "library.json", WithMonotonicIDs())
	seed(t, c,
		[3]string{"A", "X", "2001"},
		[3]string{"B", "Y", "2002"},
	)

	_, err := c.Delete("1")
	require.NoError(t, err)

	book, err := c.Add("C", "Z", "2003")
	require.NoError(t, err)
	assert.Equal(t, 3, book.ID)
}

func TestEmptyCatalogOperations(t *testing.T) {
	c := newTestCatalog(t, "library.json")

	_, err := c.Delete("1")
	assert.True(t, errors.IsEmptyCatalog(err))

	_, err = c.Search("title", "x")
	assert.True(t, errors.IsEmptyCatalog(err))

	_, err = c.ChangeStatus("1", "available")
	assert.True(t, errors.IsEmptyCatalog(err))

	_, err = c.List()
	assert.True(t, errors.IsEmptyCatalog(err))

	_, statErr := os.Stat(c.Path())
	assert.True(t, os.IsNotExist(statErr), "no operation may write the file")
}

func TestSearch(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c,
		[3]string{"The Hobbit", "tolkien", "1937"},
		[3]string{"Dune", "Frank Herbert", "2020"},
		[3]string{"Silmarillion", "Tolkien", "1977"},
		[3]string{"Piranesi", "Susanna Clarke", "2020"},
	)

	t.Run("year", func(t *testing.T) {
		books, err := c.Search("year", "2020")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Piranesi", books[1].Title)
	})

	t.Run("author ignores case", func(t *testing.T) {
		books, err := c.Search("author", "Tolkien")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, 1, books[0].ID)
		assert.Equal(t, 3, books[1].ID)
	})

	t.Run("field name ignores case", func(t *testing.T) {
		books, err := c.Search(" TITLE ", "the hobbit")
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("exact match only", func(t *testing.T) {
		_, err := c.Search("title", "Hobbit")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := c.Search("isbn", "123")
		var vErr *errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "field", vErr.Field)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := c.Search("title", "  ")
		var vErr *errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "query", vErr.Field)
	})
}

func TestChangeStatus(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c, [3]string{"Dune", "Frank Herbert", "1965"})

	book, err := c.ChangeStatus("1", "checked_out")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, book.Status)

	reloaded, err := New(WithPath(c.Path()), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	books, err := reloaded.List()
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, books[0].Status)

	for _, status := range []string{"lost", "checked out", "checked-out"} {
		_, err = c.ChangeStatus("1", status)
		assert.True(t, errors.IsValidationError(err), status)
	}
	_, err = c.ChangeStatus("1", "available")
	require.NoError(t, err)
	_, err = c.ChangeStatus("1", "Checked Out")
	assert.True(t, errors.IsValidationError(err))
	book, err = c.ChangeStatus("1", " Checked_Out ")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, book.Status)
	books, _ = c.List()
	assert.Equal(t, StatusCheckedOut, books[0].Status)

	book, err = c.ChangeStatus("1", "AVAILABLE")
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, book.Status)

	_, err = c.ChangeStatus("9", "available")
	assert.True(t, errors.IsNotFound(err))

	_, err = c.ChangeStatus("x", "available")
	assert.True(t, errors.IsValidationError(err))
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	c := newTestCatalog(t, "library.json")

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	c.options.path = filepath.Join(blocker, "library.json")

	book, err := c.Add("Dune", "Frank Herbert", "1965")
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
	assert.Equal(t, 1, book.ID)
	assert.Equal(t, 1, c.Len(), "the record stays in memory")
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"library.json", "library.yaml"} {
		t.Run(name, func(t *testing.T) {
			c := newTestCatalog(t, name)
			seed(t, c,
				[3]string{"The Hobbit", "J.R.R. Tolkien", "1937"},
				[3]string{"Мастер и Маргарита", "Михаил Булгаков", "1967"},
				[3]string{"<Tags> & Co", "A", "-50"},
			)
			_, err := c.ChangeStatus("2", "checked_out")
			require.NoError(t, err)

			reloaded, err := New(WithPath(c.Path()), WithLogger(logging.NewNopLogger()))
			require.NoError(t, err)

			want, err := c.List()
			require.NoError(t, err)
			got, err := reloaded.List()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSaveWritesReadableJSON(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c, [3]string{"Мастер и Маргарита", "Булгаков", "1967"})

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Мастер и Маргарита")
	assert.Contains(t, string(data), `    {`)
	assert.Contains(t, string(data), `"status": "available"`)
}

func TestSaveEmptyWritesEmptyArray(t *testing.T) {
	c := newTestCatalog(t, "library.json")
	seed(t, c, [3]string{"A", "B", "2000"})
	_, err := c.Delete("1")
	require.NoError(t, err)

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestLoadLogsDebugTrace(t *testing.T) {
	rec := logging.NewRecorder(t)
	path := filepath.Join(t.TempDir(), "library.json")

	c, err := New(WithPath(path), WithLogger(rec.Logger))
	require.NoError(t, err)
	_, err = c.Add("Dune", "Frank Herbert", "1965")
	require.NoError(t, err)

	rec.AssertLogged(t, "Catalog file not found")
	rec.AssertLogged(t, "Book added")
	rec.AssertLogged(t, "Catalog saved")
}
