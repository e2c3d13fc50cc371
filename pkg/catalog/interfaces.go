package catalog

// Reader provides read-only access to the catalog.
type Reader interface {
	// IsEmpty reports whether the catalog holds no records.
	IsEmpty() bool

	// Len returns the number of records.
	Len() int

	// List returns every record in insertion order.
	List() ([]Book, error)

	// Search returns records whose field equals query, ignoring case.
	Search(field, query string) ([]Book, error)
}

// Writer mutates the catalog. Every successful mutation is persisted.
type Writer interface {
	// Add validates and appends a new available book.
	Add(title, author, year string) (Book, error)

	// Delete removes the first record with the given id.
	Delete(id string) (Book, error)

	// ChangeStatus sets the status of the first record with the given id.
	ChangeStatus(id, status string) (Book, error)
}

// Store combines Reader and Writer.
type Store interface {
	Reader
	Writer
}
