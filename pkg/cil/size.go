package cil

// Size returns the exact number of bytes the instruction occupies when
// encoded: the opcode's base length plus the operand length for its category.
// Only the switch category depends on the operand's runtime value (its
// target count); every other category is fixed by the opcode alone.
func (ins *Instruction) Size() int {
	size := ins.OpCode.Size()

	switch ins.OpCode.OperandType {
	case InlineBrTarget, InlineField, InlineI, InlineMethod, InlineSig,
		InlineString, InlineTok, InlineType, ShortInlineR:
		return size + 4

	case InlineI8, InlineR:
		return size + 8

	case InlineNone, InlinePhi:
		return size

	case InlineSwitch:
		// 4-byte target count plus 4 bytes per target. A nil or
		// wrongly-typed operand counts as zero targets.
		targets, _ := ins.Operand.([]*Instruction)
		return size + 4 + 4*len(targets)

	case InlineVar:
		return size + 2

	case ShortInlineBrTarget, ShortInlineI, ShortInlineVar:
		return size + 1

	default:
		return size
	}
}
