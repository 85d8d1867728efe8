// Command succinctcli drives the dynamic bitvector and balanced-
// parentheses tree from a query file, per spec §6's CLI contract:
// succinctcli <mode> <input_file> <output_file>, mode in {bv, bp}.
// Grounded on the flags+logrus cmd/weaviate-server pattern from
// _teacherref/cmd_weaviate/main.go, scaled down to this program's single
// positional-argument shape.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// Args are the three positional arguments spec §6 defines. go-flags
// doesn't name positional args the way an Options struct names its
// long-form flags, so they're parsed separately below.
type Args struct {
	Mode       string `positional-arg-name:"mode" description:"bv or bp"`
	InputFile  string `positional-arg-name:"input_file"`
	OutputFile string `positional-arg-name:"output_file"`
}

func main() {
	log := logrus.WithFields(logrus.Fields{"app": "succinctcli"}).Logger

	var args Args
	parser := flags.NewParser(&args, flags.Default)
	rest, err := parser.Parse()
	if err != nil {
		log.Fatal(err)
	}
	if len(rest) != 3 {
		log.Fatal("usage: succinctcli <mode> <input_file> <output_file>")
	}
	args.Mode, args.InputFile, args.OutputFile = rest[0], rest[1], rest[2]

	var summary string
	switch args.Mode {
	case "bv":
		summary, err = runBV(args.InputFile, args.OutputFile)
	case "bp":
		summary, err = runBP(args.InputFile, args.OutputFile)
	default:
		log.Fatalf("unknown mode %q, expected bv or bp", args.Mode)
	}
	if err != nil {
		log.WithError(err).Fatal("run failed")
	}

	os.Stdout.WriteString(summary + "\n")
}
