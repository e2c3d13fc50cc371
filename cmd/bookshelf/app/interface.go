package app

import "github.com/agentstation/bookshelf/cmd/bookshelf/cmd/books"

// Ensure App implements books.AppContext at compile time.
var _ books.AppContext = (*App)(nil)
