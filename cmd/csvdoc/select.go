package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

func runSelect(args []string) error {
	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	list := fs.String("c", "", "columns to keep: 1-based indices, ranges N-M, header names, comma-separated")
	sep := fs.String("d", ",", "output separator")
	out := fs.String("o", "", "output file (default stdout, written atomically)")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: csvdoc select -c LIST [-d SEP] [-o OUT] [-v] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *list == "" {
		fs.Usage()
		return errors.New("no columns selected")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("select takes exactly one FILE")
	}
	file := fs.Arg(0)

	outSep, err := separatorRune(*sep)
	if err != nil {
		log.WithError(err).Error("bad -d flag")
		return err
	}

	if err := selectColumns(file, *list, outSep, *out); err != nil {
		log.WithFields(logrus.Fields{"file": file, "error": err}).Error("select failed")
		return err
	}
	return nil
}

// selectColumns streams file row by row, projecting each row onto the
// selected columns. The first row resolves header names; it is projected and
// emitted like every other row.
func selectColumns(file, list string, outSep rune, outPath string) error {
	in, err := openInput(file)
	if err != nil {
		return err
	}
	defer in.Close()

	sc, err := csv.NewScanner(in, csv.WithDialect(inputDialect(file)))
	if err != nil {
		return err
	}

	return writeOutput(outPath, func(w io.Writer) error {
		enc, err := csv.NewEncoder(w, csv.WithSeparator(outSep))
		if err != nil {
			return err
		}

		var cols []int
		for sc.Scan() {
			row := sc.Values()
			if cols == nil {
				if cols, err = resolveColumns(list, row); err != nil {
					return err
				}
			}
			if err := enc.WriteRow(project(row, cols)...); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
		return enc.Flush()
	})
}

// resolveColumns turns a -c list into zero-based column indices. Tokens are
// tried as a 1-based range, then a 1-based index, then a header name, so a
// header named like a number can only be selected by position.
func resolveColumns(list string, header []string) ([]int, error) {
	var cols []int
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if from, to, ok := parseRange(token); ok {
			for i := from; i <= to; i++ {
				cols = append(cols, i-1)
			}
			continue
		}
		if n, err := strconv.Atoi(token); err == nil && n > 0 {
			cols = append(cols, n-1)
			continue
		}
		col := -1
		for i, name := range header {
			if name == token {
				col = i
				break
			}
		}
		if col < 0 {
			return nil, fmt.Errorf("unknown column %q", token)
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, errors.New("no columns selected")
	}
	return cols, nil
}

// parseRange reads N-M with 1 <= N <= M.
func parseRange(token string) (from, to int, ok bool) {
	lo, hi, found := strings.Cut(token, "-")
	if !found {
		return 0, 0, false
	}
	from, err := strconv.Atoi(lo)
	if err != nil || from < 1 {
		return 0, 0, false
	}
	to, err = strconv.Atoi(hi)
	if err != nil || to < from {
		return 0, 0, false
	}
	return from, to, true
}

// project picks cols out of row, padding columns the row does not reach.
func project(row []string, cols []int) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		if col < len(row) {
			out[i] = row[col]
		}
	}
	return out
}
