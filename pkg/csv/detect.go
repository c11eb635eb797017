package csv

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	defaultPreviewRows = 16
	maxPreviewField    = 256
)

// detectCandidates is the default separator candidate set, in priority
// order for tie breaking.
var detectCandidates = []rune{',', '\t', '|', ';', ':'}

// Detection describes what Detect inferred from a bounded preview of the
// input.
type Detection struct {
	// Dialect is the winning dialect; the escaper is always '"'.
	Dialect Dialect

	// Heading reports whether the first preview row looks like column
	// names: all fields non-empty, non-numeric, and pairwise distinct.
	Heading bool

	// Signature is the MD5 fingerprint of the heading joined by the
	// winning separator. Empty unless Heading is set. Stable across runs,
	// suitable as a settings-cache key for a recurring feed.
	Signature string

	// Preview holds the parsed preview rows the decision was based on.
	Preview [][]string
}

// WithPreviewRows caps how many input lines Detect inspects (default 16).
func WithPreviewRows(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.previewRows = n
		}
	}
}

// WithCandidates replaces the candidate separator set. Order is priority on
// ties.
func WithCandidates(seps ...rune) Option {
	return func(o *options) {
		if len(seps) > 0 {
			o.candidates = seps
		}
	}
}

// Detect reads a bounded preview from r and infers the separator, whether
// the input starts with a heading, and the heading's signature. A candidate
// separator wins when every preview row splits into the same field count
// greater than one with no oversized fields; among winners the widest split
// is chosen, candidate order breaking ties. When no candidate wins, the
// default dialect is reported with no heading.
//
// Detect consumes from r. Re-open or re-seek the source to parse it
// afterwards.
func Detect(r io.Reader, opts ...Option) (*Detection, error) {
	o := newOptions(opts...)
	preview, err := readPreview(r, o.previewRows)
	if err != nil {
		return nil, err
	}

	var (
		best      [][]string
		bestSep   rune
		bestWidth int
	)
	for _, sep := range o.candidates {
		rows, ok := splitPreview(preview, sep)
		if ok && len(rows[0]) > bestWidth {
			best, bestSep, bestWidth = rows, sep, len(rows[0])
		}
	}
	if best == nil {
		doc, err := ParseString(preview)
		if err != nil {
			return nil, err
		}
		return &Detection{Dialect: DefaultDialect(), Preview: doc.Values()}, nil
	}

	det := &Detection{
		Dialect: Dialect{Separator: bestSep, Escaper: '"'},
		Preview: best,
	}
	if isHeading(best[0]) {
		det.Heading = true
		det.Signature = fmt.Sprintf("%x", md5.Sum([]byte(strings.Join(best[0], string(bestSep)))))
	}
	return det, nil
}

// readPreview collects up to n non-blank lines, terminators normalized away.
func readPreview(r io.Reader, n int) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := 0
	for lines < n && sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
		lines++
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read preview: %w", err)
	}
	return b.String(), nil
}

// splitPreview parses the preview with sep as separator and reports whether
// the result is a consistent multi-column table with no oversized fields.
func splitPreview(preview string, sep rune) ([][]string, bool) {
	doc, err := ParseString(preview, WithSeparator(sep))
	if err != nil {
		return nil, false
	}
	rows := doc.Values()
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, false
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, false
		}
		for _, v := range row {
			if len(v) > maxPreviewField {
				return nil, false
			}
		}
	}
	return rows, true
}

// isHeading reports whether fields look like column names rather than data:
// every field non-empty, non-numeric, and distinct from the others.
func isHeading(fields []string) bool {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return false
		}
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return false
		}
		if _, dup := seen[f]; dup {
			return false
		}
		seen[f] = struct{}{}
	}
	return true
}
