// Sigil CLI - inspect the CIL opcode table and per-instruction metrics
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/sigil/pkg/cil"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("sigil")

func main() {
	format := flag.String("format", "text", "Output format: text, toml, cbor")
	output := flag.String("o", "", "Write output to file instead of stdout")
	effect := flag.Bool("effect", false, "Include size and stack-effect columns (text format)")
	verbosity := flag.Int("verbosity", 0, "Log verbosity (0 = quiet)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sigil [options] [opcode names...]\n\n")
		fmt.Fprintf(os.Stderr, "Dumps CIL opcode metadata. With no names, the full table is dumped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sigil                          # Full table, text\n")
		fmt.Fprintf(os.Stderr, "  sigil -effect call ret dup     # Metrics for selected opcodes\n")
		fmt.Fprintf(os.Stderr, "  sigil -format toml -o table.toml\n")
		fmt.Fprintf(os.Stderr, "  sigil -format cbor -o table.cbor\n")
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	ops, err := selectOpCodes(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Infof("selected %d of %d opcodes", len(ops), cil.OpCodeCount())

	data, err := renderOpCodes(ops, *format, *effect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Infof("wrote %d bytes to %s", len(data), *output)
}
