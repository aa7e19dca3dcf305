// Command atrac1 drives the codec core from the command line: encode a
// WAV file to an AEA container, decode an AEA container back to WAV, or
// dump an AEA container's frame metadata as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

const usage = `atrac1 — ATRAC1-compatible codec CLI

Usage:
  atrac1 encode --input <wav> --output <aea> [--title <s>] [--config <yaml>]
  atrac1 decode --input <aea> --output <wav>
  atrac1 dump   --input <aea> --output <json>

Exit codes: 0 success, 1 usage/IO error, 2 format validation error.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false, Prefix: "atrac1"})

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "encode":
		return runEncode(rest, logger)
	case "decode":
		return runDecode(rest, logger)
	case "dump":
		return runDump(rest, logger)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stderr, usage)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "atrac1: unknown command %q\n\n%s", cmd, usage)
		return 1
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: atrac1 %s --input <path> --output <path>\n", name)
		fs.PrintDefaults()
	}
	return fs
}
