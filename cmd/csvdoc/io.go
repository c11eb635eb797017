package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

// openInput opens path for reading, with "-" standing for stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// inputDialect sniffs the dialect of a file from a bounded preview. Stdin
// cannot be rewound after sniffing, so "-" always reads as comma-separated.
func inputDialect(path string) csv.Dialect {
	if path == "-" {
		return csv.DefaultDialect()
	}
	f, err := os.Open(path)
	if err != nil {
		return csv.DefaultDialect()
	}
	defer f.Close()

	det, err := csv.Detect(f)
	if err != nil {
		return csv.DefaultDialect()
	}
	log.WithFields(logrus.Fields{
		"file":      path,
		"separator": string(det.Dialect.Separator),
		"heading":   det.Heading,
	}).Debug("detected dialect")
	return det.Dialect
}

// loadDocument parses the whole input into a frozen document using the
// sniffed dialect.
func loadDocument(path string) (*csv.Document, error) {
	if path == "-" {
		return csv.Parse(os.Stdin)
	}
	return csv.ParseFile(path, csv.WithDialect(inputDialect(path)))
}

// writeOutput runs write against stdout, or against a temp file that is
// renamed over path only after write and close succeed, so readers of path
// never observe a half-written file.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// separatorRune decodes a -d flag value into a single rune.
func separatorRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	return r, nil
}
