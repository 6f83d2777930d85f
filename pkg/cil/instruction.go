package cil

import "fmt"

// Instruction is a single opcode + operand pair at an offset within its
// method body.
//
// Operand holds exactly one payload, matching the opcode's operand category:
// nil (InlineNone), byte (unaligned.), int8 (ldc.i4.s), int32, int64,
// float32, float64, string, *Instruction (branch target), []*Instruction
// (switch targets), *TypeRef, *FieldRef, *MethodRef, *MethodSig (calli),
// Token (ldtoken), *Param, or *Local. Instructions built through the
// validated constructors always satisfy that pairing; NewUnchecked does not.
//
// Offset is the instruction's byte position within the method body. It is
// written once by an external layout pass and defaults to zero; the layout
// write must happen before any concurrent read.
type Instruction struct {
	OpCode  OpCode
	Operand any
	Offset  uint32
}

// InvalidOperandError reports a constructor call whose operand payload does
// not match the opcode's declared operand category (or, for the byte and
// int8 forms, the required opcode identity).
type InvalidOperandError struct {
	OpCode   OpCode
	Expected string // what the constructor requires of the opcode
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("cil: invalid operand for %s: constructor requires %s, opcode declares %s",
		e.OpCode.Name, e.Expected, e.OpCode.OperandType)
}

func mismatch(op OpCode, expected string) error {
	return &InvalidOperandError{OpCode: op, Expected: expected}
}

func checkOperandType(op OpCode, want OperandType) error {
	if op.OperandType != want {
		return mismatch(op, want.String())
	}
	return nil
}

// New builds an instruction for an opcode that takes no operand.
func New(op OpCode) (*Instruction, error) {
	if err := checkOperandType(op, InlineNone); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op}, nil
}

// NewWithByte builds an alignment-prefix instruction. The unsigned byte form
// is legal on exactly one opcode, unaligned.; every other opcode is rejected.
func NewWithByte(op OpCode, value byte) (*Instruction, error) {
	if op.Code != OpUnaligned.Code {
		return nil, mismatch(op, "the unaligned. opcode (ShortInlineI byte form)")
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithInt8 builds a short-form integer-load instruction. The signed byte
// form is legal on exactly one opcode, ldc.i4.s.
func NewWithInt8(op OpCode, value int8) (*Instruction, error) {
	if op.Code != OpLdcI4S.Code {
		return nil, mismatch(op, "the ldc.i4.s opcode (ShortInlineI int8 form)")
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithInt32 builds an instruction with a 4-byte integer immediate.
func NewWithInt32(op OpCode, value int32) (*Instruction, error) {
	if err := checkOperandType(op, InlineI); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithInt64 builds an instruction with an 8-byte integer immediate.
func NewWithInt64(op OpCode, value int64) (*Instruction, error) {
	if err := checkOperandType(op, InlineI8); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithFloat32 builds an instruction with a 4-byte float immediate.
func NewWithFloat32(op OpCode, value float32) (*Instruction, error) {
	if err := checkOperandType(op, ShortInlineR); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithFloat64 builds an instruction with an 8-byte float immediate.
func NewWithFloat64(op OpCode, value float64) (*Instruction, error) {
	if err := checkOperandType(op, InlineR); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithString builds an instruction with a string-token operand.
func NewWithString(op OpCode, value string) (*Instruction, error) {
	if err := checkOperandType(op, InlineString); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: value}, nil
}

// NewWithTarget builds a branch instruction. Both the long and short
// branch-target categories encode the same logical operand, so either is
// accepted. The target is shared by reference; many branches may point at
// the same instruction.
func NewWithTarget(op OpCode, target *Instruction) (*Instruction, error) {
	if op.OperandType != InlineBrTarget && op.OperandType != ShortInlineBrTarget {
		return nil, mismatch(op, "InlineBrTarget or ShortInlineBrTarget")
	}
	return &Instruction{OpCode: op, Operand: target}, nil
}

// NewWithTargets builds a switch instruction with an ordered target list.
func NewWithTargets(op OpCode, targets []*Instruction) (*Instruction, error) {
	if err := checkOperandType(op, InlineSwitch); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: targets}, nil
}

// NewWithType builds an instruction with a type-token operand.
func NewWithType(op OpCode, t *TypeRef) (*Instruction, error) {
	if err := checkOperandType(op, InlineType); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: t}, nil
}

// NewWithField builds an instruction with a field-token operand.
func NewWithField(op OpCode, f *FieldRef) (*Instruction, error) {
	if err := checkOperandType(op, InlineField); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: f}, nil
}

// NewWithMethod builds an instruction with a method-token operand.
func NewWithMethod(op OpCode, m *MethodRef) (*Instruction, error) {
	if err := checkOperandType(op, InlineMethod); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: m}, nil
}

// NewWithToken builds an ldtoken-style instruction whose operand is a type,
// field, or method reference.
func NewWithToken(op OpCode, tok Token) (*Instruction, error) {
	if err := checkOperandType(op, InlineTok); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: tok}, nil
}

// NewWithSig builds an indirect-call instruction with a standalone method
// signature operand.
func NewWithSig(op OpCode, sig *MethodSig) (*Instruction, error) {
	if err := checkOperandType(op, InlineSig); err != nil {
		return nil, err
	}
	return &Instruction{OpCode: op, Operand: sig}, nil
}

// NewWithParam builds an instruction referencing a formal parameter. Both
// variable-index widths are accepted.
func NewWithParam(op OpCode, p *Param) (*Instruction, error) {
	if op.OperandType != InlineVar && op.OperandType != ShortInlineVar {
		return nil, mismatch(op, "InlineVar or ShortInlineVar")
	}
	return &Instruction{OpCode: op, Operand: p}, nil
}

// NewWithLocal builds an instruction referencing a local-variable slot. Both
// variable-index widths are accepted.
func NewWithLocal(op OpCode, l *Local) (*Instruction, error) {
	if op.OperandType != InlineVar && op.OperandType != ShortInlineVar {
		return nil, mismatch(op, "InlineVar or ShortInlineVar")
	}
	return &Instruction{OpCode: op, Operand: l}, nil
}

// NewUnchecked builds an instruction without validating the operand against
// the opcode's operand category. It exists for decoder code that has already
// validated raw bytes against the opcode table and must tolerate malformed
// input; instructions built here carry no operand-shape guarantee.
func NewUnchecked(op OpCode, operand any) *Instruction {
	return &Instruction{OpCode: op, Operand: operand}
}
