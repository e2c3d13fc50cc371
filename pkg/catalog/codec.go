package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// encode serializes books in the given format. Non-ASCII text is written as is.
func encode(format Format, books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}

	if format == FormatYAML {
		return yaml.MarshalWithOptions(books,
			yaml.Indent(constants.YAMLIndent),
			yaml.IndentSequence(false),
		)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(books); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decode parses books from data in the given format.
func decode(format Format, data []byte) ([]Book, error) {
	var books []Book
	if format == FormatYAML {
		if err := yaml.Unmarshal(data, &books); err != nil {
			return nil, err
		}
		return books, nil
	}

	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}
