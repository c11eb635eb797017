package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

func runStat(args []string) error {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: csvdoc stat [-v] FILE...")
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
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return errors.New("no input files")
	}

	lines := make([]string, len(files))
	g := new(errgroup.Group)
	g.SetLimit(maxParallel)
	for i, file := range files {
		g.Go(func() error {
			line, err := statFile(file)
			if err != nil {
				log.WithFields(logrus.Fields{"file": file, "error": err}).Error("stat failed")
				return err
			}
			lines[i] = line
			return nil
		})
	}
	err := g.Wait()
	for _, line := range lines {
		if line != "" {
			fmt.Println(line)
		}
	}
	return err
}

// statFile scans a whole file without materializing it, counting rows and
// tracking the column spread.
func statFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc, err := csv.NewScanner(f, csv.WithDialect(inputDialect(path)))
	if err != nil {
		return "", err
	}

	rows, minCols, maxCols := 0, 0, 0
	for sc.Scan() {
		n := len(sc.Values())
		if rows == 0 || n < minCols {
			minCols = n
		}
		if n > maxCols {
			maxCols = n
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s: %s rows, %d..%d columns, %s",
		path, humanize.Comma(int64(rows)), minCols, maxCols,
		humanize.Bytes(uint64(info.Size()))), nil
}
