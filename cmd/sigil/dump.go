package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chazu/sigil/pkg/cil"
	"github.com/chazu/sigil/pkg/optab"
)

// selectOpCodes resolves opcode names to descriptors, or returns the full
// table (ordered by code) when no names are given.
func selectOpCodes(names []string) ([]cil.OpCode, error) {
	if len(names) == 0 {
		return cil.AllOpCodes(), nil
	}
	ops := make([]cil.OpCode, 0, len(names))
	for _, name := range names {
		op, ok := cil.LookupName(name)
		if !ok {
			return nil, fmt.Errorf("unknown opcode %q", name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// renderOpCodes formats descriptors in the requested output format.
func renderOpCodes(ops []cil.OpCode, format string, effect bool) ([]byte, error) {
	switch format {
	case "text":
		return renderText(ops, effect), nil
	case "toml":
		return optab.MarshalTOML(optab.FromOpCodes(ops))
	case "cbor":
		return optab.MarshalCBOR(optab.FromOpCodes(ops))
	default:
		return nil, fmt.Errorf("unknown format %q (want text, toml, or cbor)", format)
	}
}

func renderText(ops []cil.OpCode, effect bool) []byte {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	if effect {
		fmt.Fprintln(w, "NAME\tCODE\tOPERAND\tFLOW\tSIZE\tPUSHES\tPOPS")
	} else {
		fmt.Fprintln(w, "NAME\tCODE\tOPERAND\tFLOW\tPUSH\tPOP")
	}

	for _, op := range ops {
		if effect {
			// Static metrics for a bare instruction: call-family rows show
			// "sig" because their effect depends on the method signature,
			// and ret shows "0/1" for its context-dependent pop.
			size, pushes, pops := staticMetrics(op)
			fmt.Fprintf(w, "%s\t0x%04X\t%s\t%s\t%s\t%s\t%s\n",
				op.Name, uint16(op.Code), op.OperandType, op.FlowControl, size, pushes, pops)
			continue
		}
		fmt.Fprintf(w, "%s\t0x%04X\t%s\t%s\t%s\t%s\n",
			op.Name, uint16(op.Code), op.OperandType, op.FlowControl, op.Push, op.Pop)
	}

	w.Flush()
	return []byte(sb.String())
}

func staticMetrics(op cil.OpCode) (size, pushes, pops string) {
	ins := cil.NewUnchecked(op, nil)

	if op.OperandType == cil.InlineSwitch {
		size = fmt.Sprintf("%d+4n", ins.Size())
	} else {
		size = fmt.Sprintf("%d", ins.Size())
	}

	if op.FlowControl == cil.FlowCall && op.Code != cil.OpJmp.Code {
		return size, "sig", "sig"
	}

	pushCount, popCount := ins.StackEffect(false)
	pushes = fmt.Sprintf("%d", pushCount)
	switch popCount {
	case cil.PopsAll:
		pops = "all"
	case 0:
		if op.Pop == cil.VarPop {
			pops = "0/1"
		} else {
			pops = "0"
		}
	default:
		pops = fmt.Sprintf("%d", popCount)
	}
	return size, pushes, pops
}
