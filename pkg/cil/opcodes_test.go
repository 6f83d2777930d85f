package cil

import "testing"

func TestTableNamesUnique(t *testing.T) {
	// Duplicate codes cannot survive the map, but duplicate names could.
	seen := make(map[string]Code)
	for _, op := range AllOpCodes() {
		if prev, ok := seen[op.Name]; ok {
			t.Errorf("opcode name %q registered twice: 0x%04X and 0x%04X", op.Name, prev, op.Code)
		}
		seen[op.Name] = op.Code
	}
}

func TestTableCount(t *testing.T) {
	if count := OpCodeCount(); count < 200 {
		t.Errorf("OpCodeCount() = %d, want at least 200", count)
	}
	if got, want := len(AllOpCodes()), OpCodeCount(); got != want {
		t.Errorf("len(AllOpCodes()) = %d, want %d", got, want)
	}
}

func TestTwoByteOpcodesCarryEscapePrefix(t *testing.T) {
	for _, op := range AllOpCodes() {
		switch op.Size() {
		case 1:
			if op.Code > 0xFF {
				t.Errorf("%s: Size() = 1 but code 0x%04X has a prefix byte", op.Name, op.Code)
			}
		case 2:
			if op.Code>>8 != 0xFE {
				t.Errorf("%s: two-byte opcode 0x%04X does not use the 0xFE prefix", op.Name, op.Code)
			}
		default:
			t.Errorf("%s: Size() = %d, want 1 or 2", op.Name, op.Size())
		}
	}
}

func TestShortInlineIUsedByExactlyTwoOpcodes(t *testing.T) {
	// The byte form belongs to unaligned. and the int8 form to ldc.i4.s;
	// the constructors rely on no third opcode sharing the category.
	var got []string
	for _, op := range AllOpCodes() {
		if op.OperandType == ShortInlineI {
			got = append(got, op.Name)
		}
	}
	if len(got) != 2 {
		t.Fatalf("ShortInlineI opcodes = %v, want exactly [ldc.i4.s unaligned.]", got)
	}
	if got[0] != "ldc.i4.s" || got[1] != "unaligned." {
		t.Errorf("ShortInlineI opcodes = %v, want [ldc.i4.s unaligned.]", got)
	}
}

func TestCallFamilyFlowControl(t *testing.T) {
	for _, op := range []OpCode{OpCall, OpCallvirt, OpCalli, OpNewobj, OpJmp} {
		if op.FlowControl != FlowCall {
			t.Errorf("%s.FlowControl = %s, want Call", op.Name, op.FlowControl)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		code Code
		want string
		ok   bool
	}{
		{0x00, "nop", true},
		{0x28, "call", true},
		{0x72, "ldstr", true},
		{0xFE01, "ceq", true},
		{0xFE12, "unaligned.", true},
		{0x24, "", false},   // gap in the single-byte range
		{0xFE19, "", false}, // gap in the two-byte range
	}

	for _, tt := range tests {
		op, ok := Lookup(tt.code)
		if ok != tt.ok {
			t.Errorf("Lookup(0x%04X) ok = %v, want %v", tt.code, ok, tt.ok)
			continue
		}
		if ok && op.Name != tt.want {
			t.Errorf("Lookup(0x%04X) = %s, want %s", tt.code, op.Name, tt.want)
		}
	}
}

func TestLookupName(t *testing.T) {
	op, ok := LookupName("ldc.i4.s")
	if !ok || op.Code != OpLdcI4S.Code {
		t.Errorf("LookupName(ldc.i4.s) = (%v, %v), want OpLdcI4S", op, ok)
	}
	if _, ok := LookupName("ldc.i9"); ok {
		t.Error("LookupName(ldc.i9) found an opcode, want miss")
	}
}

func TestAllOpCodesSorted(t *testing.T) {
	ops := AllOpCodes()
	for i := 1; i < len(ops); i++ {
		if ops[i-1].Code >= ops[i].Code {
			t.Fatalf("AllOpCodes not sorted at %d: 0x%04X then 0x%04X", i, ops[i-1].Code, ops[i].Code)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{InlineSwitch.String(), "InlineSwitch"},
		{ShortInlineBrTarget.String(), "ShortInlineBrTarget"},
		{OperandType(99).String(), "OperandType(99)"},
		{FlowCondBranch.String(), "CondBranch"},
		{FlowControl(99).String(), "FlowControl(99)"},
		{Push1Push1.String(), "Push1Push1"},
		{StackPush(99).String(), "StackPush(99)"},
		{PopAll.String(), "PopAll"},
		{StackPop(99).String(), "StackPop(99)"},
		{OpNop.String(), "nop"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
