package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/csvdoc/csvdoc/pkg/csv"
)

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	to := fs.String("to", "json", "output format: json or csv")
	sep := fs.String("d", ",", "output separator (csv format)")
	out := fs.String("o", "", "output file (default stdout, written atomically)")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: csvdoc convert [-to json|csv] [-d SEP] [-o OUT] [-v] FILE")
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
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("convert takes exactly one FILE")
	}
	file := fs.Arg(0)

	outSep, err := separatorRune(*sep)
	if err != nil {
		log.WithError(err).Error("bad -d flag")
		return err
	}

	if err := convertFile(file, *to, outSep, *out); err != nil {
		log.WithFields(logrus.Fields{"file": file, "error": err}).Error("convert failed")
		return err
	}
	return nil
}

func convertFile(file, format string, outSep rune, outPath string) error {
	doc, err := loadDocument(file)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		if data, err = doc.ToJSON(); err != nil {
			return err
		}
	case "csv":
		text, err := doc.Encode(csv.WithSeparator(outSep))
		if err != nil {
			return err
		}
		data = []byte(text)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return writeOutput(outPath, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}
