package cil

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Label returns the instruction's offset label, e.g. "IL_0004".
func (ins *Instruction) Label() string {
	return fmt.Sprintf("IL_%04x", ins.Offset)
}

// String renders the instruction as a disassembly line:
//
//	IL_0004: ldc.i4.s 10
//	IL_000b: br.s IL_0011
//	IL_0010: ldstr "hello"
//
// Branch operands render as the target's label; switch operands as a
// comma-separated label list.
func (ins *Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(ins.Label())
	sb.WriteString(": ")
	sb.WriteString(ins.OpCode.Name)
	if operand := ins.formatOperand(); operand != "" {
		sb.WriteByte(' ')
		sb.WriteString(operand)
	}
	return sb.String()
}

func (ins *Instruction) formatOperand() string {
	switch o := ins.Operand.(type) {
	case nil:
		return ""
	case *Instruction:
		if o == nil {
			return "IL_????"
		}
		return o.Label()
	case []*Instruction:
		labels := make([]string, len(o))
		for i, target := range o {
			if target == nil {
				labels[i] = "IL_????"
				continue
			}
			labels[i] = target.Label()
		}
		return "(" + strings.Join(labels, ", ") + ")"
	case string:
		return strconv.Quote(o)
	case fmt.Stringer:
		// Typed-nil references slip through validated constructors; their
		// String methods would dereference a nil receiver.
		if v := reflect.ValueOf(o); v.Kind() == reflect.Pointer && v.IsNil() {
			return "<nil>"
		}
		return o.String()
	default:
		return fmt.Sprint(o)
	}
}
