// Package main provides the csvdoc command line tool for inspecting and
// reshaping CSV files.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// maxParallel bounds how many files detect and stat work on at once.
const maxParallel = 4

const usageText = `csvdoc inspects and reshapes CSV files.

Usage:
  csvdoc <command> [flags] [arguments]

Commands:
  detect   report separator, heading, and signature for each file
  select   project columns by index, range, or header name
  convert  re-emit one file as json or csv
  stat     report row, column, and size figures for each file

Input dialects are autodetected for files; stdin ("-") assumes commas.
Run 'csvdoc <command> -h' for command flags.`

func usage() {
	fmt.Fprintln(os.Stderr, usageText)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "detect":
		err = runDetect(os.Args[2:])
	case "select":
		err = runSelect(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "stat":
		err = runStat(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		log.Errorf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		os.Exit(1)
	}
}
