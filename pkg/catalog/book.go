package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Book is a single catalog record.
type Book struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year" yaml:"year"`
	Status Status `json:"status" yaml:"status"`
}

// String renders the book as a single display line.
func (b Book) String() string {
	return fmt.Sprintf("ID: %d, Title: %s, Author: %s, Year: %d, Status: %s",
		b.ID, b.Title, b.Author, b.Year, b.Status)
}

// Status marks whether a book is on the shelf.
type Status string

// Status values.
const (
	StatusAvailable  Status = "available"
	StatusCheckedOut Status = "checked_out"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusAvailable, StatusCheckedOut}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// ParseStatus converts user input to a Status. Only the two status words are
// accepted, ignoring case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return StatusAvailable, nil
	case "checked_out":
		return StatusCheckedOut, nil
	default:
		return "", errors.NewValidationError("status", s,
			fmt.Sprintf("must be %q or %q", StatusAvailable, StatusCheckedOut))
	}
}

// Field names a searchable book attribute.
type Field string

// Searchable fields.
const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldYear   Field = "year"
)

// Fields lists every searchable field.
var Fields = []Field{FieldTitle, FieldAuthor, FieldYear}

// String returns the string representation of the field.
func (f Field) String() string {
	return string(f)
}

// ParseField converts user input to a Field. Matching is case-insensitive.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldTitle, FieldAuthor, FieldYear:
		return f, nil
	default:
		return "", errors.NewValidationError("field", s,
			fmt.Sprintf("choose %q, %q or %q", FieldTitle, FieldAuthor, FieldYear))
	}
}

// Value returns the field of b as text, the form search compares against.
func (f Field) Value(b Book) string {
	switch f {
	case FieldTitle:
		return b.Title
	case FieldAuthor:
		return b.Author
	case FieldYear:
		return strconv.Itoa(b.Year)
	default:
		return ""
	}
}

// parseID converts user input to a record id.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewValidationError("id", s, "must be a number")
	}
	return id, nil
}
