package cil

import "fmt"

// Code is the numeric identifier of an opcode. Single-byte opcodes are equal
// to their encoding byte; two-byte opcodes carry the 0xFE escape prefix in
// the high byte (e.g. ceq = 0xFE01).
type Code uint16

// OperandType classifies the shape of the operand that follows an opcode in
// the encoded instruction stream.
type OperandType uint8

const (
	// InlineBrTarget is a 4-byte branch target.
	InlineBrTarget OperandType = iota

	// InlineField is a 4-byte field token.
	InlineField

	// InlineI is a 4-byte integer immediate.
	InlineI

	// InlineI8 is an 8-byte integer immediate.
	InlineI8

	// InlineMethod is a 4-byte method token.
	InlineMethod

	// InlineNone means the opcode takes no operand.
	InlineNone

	// InlinePhi is reserved and unused by any current opcode.
	InlinePhi

	// InlineR is an 8-byte floating-point immediate.
	InlineR

	// InlineSig is a 4-byte standalone-signature token.
	InlineSig

	// InlineString is a 4-byte string token.
	InlineString

	// InlineSwitch is a 4-byte target count followed by 4 bytes per target.
	InlineSwitch

	// InlineTok is a 4-byte metadata token (type, field, or method).
	InlineTok

	// InlineType is a 4-byte type token.
	InlineType

	// InlineVar is a 2-byte variable or parameter index.
	InlineVar

	// ShortInlineBrTarget is a 1-byte branch target.
	ShortInlineBrTarget

	// ShortInlineI is a 1-byte integer immediate.
	ShortInlineI

	// ShortInlineR is a 4-byte floating-point immediate.
	ShortInlineR

	// ShortInlineVar is a 1-byte variable or parameter index.
	ShortInlineVar
)

var operandTypeNames = [...]string{
	InlineBrTarget:      "InlineBrTarget",
	InlineField:         "InlineField",
	InlineI:             "InlineI",
	InlineI8:            "InlineI8",
	InlineMethod:        "InlineMethod",
	InlineNone:          "InlineNone",
	InlinePhi:           "InlinePhi",
	InlineR:             "InlineR",
	InlineSig:           "InlineSig",
	InlineString:        "InlineString",
	InlineSwitch:        "InlineSwitch",
	InlineTok:           "InlineTok",
	InlineType:          "InlineType",
	InlineVar:           "InlineVar",
	ShortInlineBrTarget: "ShortInlineBrTarget",
	ShortInlineI:        "ShortInlineI",
	ShortInlineR:        "ShortInlineR",
	ShortInlineVar:      "ShortInlineVar",
}

// String returns the canonical name of the operand type.
func (t OperandType) String() string {
	if int(t) < len(operandTypeNames) {
		return operandTypeNames[t]
	}
	return fmt.Sprintf("OperandType(%d)", uint8(t))
}

// FlowControl classifies an opcode's effect on control flow.
type FlowControl uint8

const (
	FlowBranch FlowControl = iota // unconditional branch
	FlowBreak                     // debugger breakpoint
	FlowCall                      // method call (call, callvirt, calli, newobj, jmp)
	FlowCondBranch                // conditional branch
	FlowMeta                      // prefix or metadata-only opcode
	FlowNext                      // ordinary, falls through
	FlowReturn                    // exits the method or protected region
	FlowThrow                     // raises an exception
)

var flowControlNames = [...]string{
	FlowBranch:     "Branch",
	FlowBreak:      "Break",
	FlowCall:       "Call",
	FlowCondBranch: "CondBranch",
	FlowMeta:       "Meta",
	FlowNext:       "Next",
	FlowReturn:     "Return",
	FlowThrow:      "Throw",
}

// String returns the canonical name of the flow-control class.
func (f FlowControl) String() string {
	if int(f) < len(flowControlNames) {
		return flowControlNames[f]
	}
	return fmt.Sprintf("FlowControl(%d)", uint8(f))
}

// StackPush is the static push-behaviour class of an opcode.
type StackPush uint8

const (
	Push0      StackPush = iota // pushes nothing
	Push1                       // pushes one value
	Push1Push1                  // pushes two values (dup)
	VarPush                     // push count derived from a call signature
)

var stackPushNames = [...]string{
	Push0:      "Push0",
	Push1:      "Push1",
	Push1Push1: "Push1Push1",
	VarPush:    "VarPush",
}

// String returns the canonical name of the push-behaviour class.
func (p StackPush) String() string {
	if int(p) < len(stackPushNames) {
		return stackPushNames[p]
	}
	return fmt.Sprintf("StackPush(%d)", uint8(p))
}

// StackPop is the static pop-behaviour class of an opcode.
type StackPop uint8

const (
	Pop0   StackPop = iota // pops nothing
	Pop1                   // pops one value
	Pop2                   // pops two values
	Pop3                   // pops three values
	PopAll                 // discards the entire evaluation stack
	VarPop                 // pop count depends on context (ret, call family)
)

var stackPopNames = [...]string{
	Pop0:   "Pop0",
	Pop1:   "Pop1",
	Pop2:   "Pop2",
	Pop3:   "Pop3",
	PopAll: "PopAll",
	VarPop: "VarPop",
}

// String returns the canonical name of the pop-behaviour class.
func (p StackPop) String() string {
	if int(p) < len(stackPopNames) {
		return stackPopNames[p]
	}
	return fmt.Sprintf("StackPop(%d)", uint8(p))
}

// OpCode describes a single CIL opcode: its encoding plus the static metadata
// the size and stack-effect calculators read. OpCode values are plain data;
// instructions carry them by value, so the calculators never consult a global
// table and tests may use synthetic descriptors.
type OpCode struct {
	Name        string
	Code        Code
	OperandType OperandType
	FlowControl FlowControl
	Push        StackPush
	Pop         StackPop
}

// Size returns the base encoded length of the opcode itself: 2 for opcodes
// behind the 0xFE escape prefix, 1 otherwise.
func (op OpCode) Size() int {
	if op.Code > 0xFF {
		return 2
	}
	return 1
}

// String returns the assembler name of the opcode.
func (op OpCode) String() string {
	return op.Name
}
