package catalog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"available", StatusAvailable, false},
		{" Available ", StatusAvailable, false},
		{"checked_out", StatusCheckedOut, false},
		{"CHECKED_OUT", StatusCheckedOut, false},
		{"checked out", "", true},
		{"checked-out", "", true},
		{"lost", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestFieldValue(t *testing.T) {
	b := Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965}

	assert.Equal(t, "Dune", FieldTitle.Value(b))
	assert.Equal(t, "Frank Herbert", FieldAuthor.Value(b))
	assert.Equal(t, "1965", FieldYear.Value(b))
	assert.Equal(t, "", Field("isbn").Value(b))

	f, err := ParseField("Year")
	require.NoError(t, err)
	assert.Equal(t, FieldYear, f)

	_, err = ParseField("isbn")
	assert.True(t, errors.IsValidationError(err))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)

	assert.Equal(t, FormatYAML, formatForPath("shelf.YAML"))
	assert.Equal(t, FormatJSON, formatForPath("shelf"))
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	err := Display(&buf, []Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: StatusAvailable},
		{ID: 2, Title: "Emma", Author: "Jane Austen", Year: 1815, Status: StatusCheckedOut},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"ID: 1, Title: Dune, Author: Frank Herbert, Year: 1965, Status: available\n"+
			"ID: 2, Title: Emma, Author: Jane Austen, Year: 1815, Status: checked_out\n",
		buf.String())

	assert.True(t, errors.IsEmptyCatalog(Display(&buf, nil)))
}
