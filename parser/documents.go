// Package parser reads the datasets and parameter files fed to the leak detector
package parser

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/activecm/leakhunt/pkg/leak"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReadDocuments loads every document of a dataset file, one JSON object per line
func ReadDocuments(path string) ([]leak.Document, error) {
	scanner, closer, err := OpenScanner(path)
	if err != nil {
		return nil, err
	}

	var docs []leak.Document
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var doc leak.Document
		if err := json.UnmarshalFromString(line, &doc); err != nil {
			closer()
			return nil, &LineError{Kind: "data", Line: lineNumber, Err: err}
		}
		if doc.StartDate != "" {
			if _, err := time.Parse(leak.DateFormat, doc.StartDate); err != nil {
				closer()
				return nil, &LineError{Kind: "data", Line: lineNumber, Err: err}
			}
		}
		docs = append(docs, doc)
	}

	if err := scanner.Err(); err != nil {
		closer()
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := closer(); err != nil {
		return nil, fmt.Errorf("could not close %s: %w", path, err)
	}
	return docs, nil
}

// WriteDocuments dumps documents as JSON lines
func WriteDocuments(w io.Writer, docs []leak.Document) error {
	encoder := json.NewEncoder(w)
	for _, doc := range docs {
		if err := encoder.Encode(doc); err != nil {
			return err
		}
	}
	return nil
}
