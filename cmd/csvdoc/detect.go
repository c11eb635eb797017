package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	rows := fs.Int("n", 0, "cap on preview rows inspected (default 16)")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: csvdoc detect [-n rows] [-v] FILE...")
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

	var opts []csv.Option
	if *rows > 0 {
		opts = append(opts, csv.WithPreviewRows(*rows))
	}

	lines := make([]string, len(files))
	g := new(errgroup.Group)
	g.SetLimit(maxParallel)
	for i, file := range files {
		g.Go(func() error {
			line, err := detectFile(file, opts)
			if err != nil {
				log.WithFields(logrus.Fields{"file": file, "error": err}).Error("detect failed")
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

func detectFile(path string, opts []csv.Option) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	det, err := csv.Detect(f, opts...)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: separator %q", path, det.Dialect.Separator)
	if det.Heading {
		fmt.Fprintf(&b, ", heading %s", det.Signature)
	} else {
		b.WriteString(", no heading")
	}
	if len(det.Preview) > 0 {
		fmt.Fprintf(&b, ", %d columns", len(det.Preview[0]))
	}
	fmt.Fprintf(&b, ", %d preview rows", len(det.Preview))
	return b.String(), nil
}
