package cil

import "testing"

func sigWith(params int, hasThis, returnsValue bool) *MethodSig {
	sig := &MethodSig{HasThis: hasThis, ReturnsValue: returnsValue}
	for i := 0; i < params; i++ {
		sig.Params = append(sig.Params, &TypeRef{"System", "Int32"})
	}
	return sig
}

func TestStackEffectStatic(t *testing.T) {
	target := &Instruction{OpCode: OpNop}

	tests := []struct {
		name   string
		ins    *Instruction
		pushes int
		pops   int
	}{
		{"nop", NewUnchecked(OpNop, nil), 0, 0},
		{"ldc.i4.0", NewUnchecked(OpLdcI40, nil), 1, 0},
		{"pop", NewUnchecked(OpPop, nil), 0, 1},
		{"dup", NewUnchecked(OpDup, nil), 2, 1},
		{"add", NewUnchecked(OpAdd, nil), 1, 2},
		{"stfld", NewUnchecked(OpStfld, &FieldRef{Name: "f"}), 0, 2},
		{"stelem.i4", NewUnchecked(OpStelemI4, nil), 0, 3},
		{"cpblk", NewUnchecked(OpCpblk, nil), 0, 3},
		{"brtrue", NewUnchecked(OpBrtrue, target), 0, 1},
		{"beq", NewUnchecked(OpBeq, target), 0, 2},
		{"switch", NewUnchecked(OpSwitch, []*Instruction{target}), 0, 1},
		{"throw", NewUnchecked(OpThrow, nil), 0, 1},
		{"leave", NewUnchecked(OpLeave, target), 0, PopsAll},
		{"leave.s", NewUnchecked(OpLeaveS, target), 0, PopsAll},
		{"endfinally", NewUnchecked(OpEndfinally, nil), 0, PopsAll},
		{"volatile. prefix", NewUnchecked(OpVolatile, nil), 0, 0},
	}

	for _, tt := range tests {
		pushes, pops := tt.ins.StackEffect(false)
		if pushes != tt.pushes || pops != tt.pops {
			t.Errorf("%s: StackEffect = (%d, %d), want (%d, %d)", tt.name, pushes, pops, tt.pushes, tt.pops)
		}
	}
}

func TestStackEffectRet(t *testing.T) {
	ins, err := New(OpRet)
	if err != nil {
		t.Fatal(err)
	}

	// ret is the one opcode whose pop count needs caller-supplied context.
	if _, pops := ins.StackEffect(true); pops != 1 {
		t.Errorf("ret in value-returning method: pops = %d, want 1", pops)
	}
	if _, pops := ins.StackEffect(false); pops != 0 {
		t.Errorf("ret in void method: pops = %d, want 0", pops)
	}
}

func TestStackEffectCall(t *testing.T) {
	tests := []struct {
		name   string
		op     OpCode
		sig    *MethodSig
		pushes int
		pops   int
	}{
		{"static void()", OpCall, sigWith(0, false, false), 0, 0},
		{"static value()", OpCall, sigWith(0, false, true), 1, 0},
		{"instance void(2 params)", OpCall, sigWith(2, true, false), 0, 3},
		{"instance value(2 params) returning", OpCall, sigWith(2, true, true), 1, 3},
		{"callvirt instance (1 param)", OpCallvirt, sigWith(1, true, false), 0, 2},
		{"newobj ctor(1 param)", OpNewobj, sigWith(1, true, false), 1, 1},
		{"newobj ctor()", OpNewobj, sigWith(0, true, false), 1, 0},
	}

	for _, tt := range tests {
		ins := NewUnchecked(tt.op, &MethodRef{Name: "M", Sig: tt.sig})
		pushes, pops := ins.StackEffect(false)
		if pushes != tt.pushes || pops != tt.pops {
			t.Errorf("%s: StackEffect = (%d, %d), want (%d, %d)", tt.name, pushes, pops, tt.pushes, tt.pops)
		}
	}
}

func TestStackEffectCalliExtraPop(t *testing.T) {
	// calli consumes the function pointer on top of whatever the equivalent
	// direct call consumes.
	for _, sig := range []*MethodSig{
		sigWith(0, false, false),
		sigWith(2, false, true),
		sigWith(3, true, false),
	} {
		call := NewUnchecked(OpCall, &MethodRef{Name: "M", Sig: sig})
		calli := NewUnchecked(OpCalli, sig)

		callPushes, callPops := call.StackEffect(false)
		calliPushes, calliPops := calli.StackEffect(false)

		if calliPushes != callPushes {
			t.Errorf("params=%d: calli pushes = %d, call pushes = %d, want equal",
				len(sig.Params), calliPushes, callPushes)
		}
		if calliPops != callPops+1 {
			t.Errorf("params=%d: calli pops = %d, want call pops + 1 = %d",
				len(sig.Params), calliPops, callPops+1)
		}
	}
}

func TestStackEffectNewobjPushCarveOut(t *testing.T) {
	// The constructor signature is void-returning, yet newobj pushes the
	// new instance. An ordinary call to the same signature pushes nothing.
	sig := sigWith(1, true, false)

	newobj := NewUnchecked(OpNewobj, &MethodRef{Name: ".ctor", Sig: sig})
	if pushes, pops := newobj.StackEffect(false); pushes != 1 || pops != 1 {
		t.Errorf("newobj: StackEffect = (%d, %d), want (1, 1)", pushes, pops)
	}

	call := NewUnchecked(OpCall, &MethodRef{Name: "M", Sig: sig})
	if pushes, pops := call.StackEffect(false); pushes != 0 || pops != 2 {
		t.Errorf("call: StackEffect = (%d, %d), want (0, 2)", pushes, pops)
	}
}

func TestStackEffectExplicitThis(t *testing.T) {
	// With an explicit receiver the 'this' slot is already counted among
	// the formal parameters, so no extra pop is added.
	sig := &MethodSig{HasThis: true, ExplicitThis: true, Params: []*TypeRef{{"N", "T"}, {"System", "Int32"}}}
	ins := NewUnchecked(OpCall, &MethodRef{Name: "M", Sig: sig})
	if _, pops := ins.StackEffect(false); pops != 2 {
		t.Errorf("explicit-this call: pops = %d, want 2", pops)
	}
}

func TestStackEffectUnresolvedDegradesToZero(t *testing.T) {
	// A call-family instruction whose operand is not a resolvable method
	// signature reports (0, 0) rather than failing.
	tests := []struct {
		name string
		ins  *Instruction
	}{
		{"nil operand", NewUnchecked(OpCall, nil)},
		{"wrong operand type", NewUnchecked(OpCallvirt, "garbage")},
		{"method ref without signature", NewUnchecked(OpCall, &MethodRef{Name: "M"})},
		{"newobj without signature", NewUnchecked(OpNewobj, &MethodRef{Name: ".ctor"})},
		{"typed-nil method ref", NewUnchecked(OpCall, (*MethodRef)(nil))},
		{"typed-nil signature", NewUnchecked(OpCalli, (*MethodSig)(nil))},
	}

	for _, tt := range tests {
		pushes, pops := tt.ins.StackEffect(true)
		if pushes != 0 || pops != 0 {
			t.Errorf("%s: StackEffect = (%d, %d), want (0, 0)", tt.name, pushes, pops)
		}
	}
}

func TestStackEffectNilMethodRef(t *testing.T) {
	// The method constructor accepts a nil reference, so the calculator must
	// treat it as unresolvable rather than dereferencing it.
	ins, err := NewWithMethod(OpCall, nil)
	if err != nil {
		t.Fatalf("NewWithMethod(call, nil): %v", err)
	}
	if pushes, pops := ins.StackEffect(false); pushes != 0 || pops != 0 {
		t.Errorf("nil method ref: StackEffect = (%d, %d), want (0, 0)", pushes, pops)
	}
}

func TestStackEffectJmp(t *testing.T) {
	// The stack must be empty when jmp executes, so its effect is (0, 0)
	// even with a fully resolved signature.
	ins := NewUnchecked(OpJmp, &MethodRef{Name: "M", Sig: sigWith(2, true, true)})
	if pushes, pops := ins.StackEffect(true); pushes != 0 || pops != 0 {
		t.Errorf("jmp: StackEffect = (%d, %d), want (0, 0)", pushes, pops)
	}
}

func TestStackEffectSyntheticOpcode(t *testing.T) {
	// The calculators read metadata only from the instruction's own OpCode
	// value, so synthetic descriptors work without touching the table.
	op := OpCode{Name: "fake", Code: 0xE9, OperandType: InlineNone, FlowControl: FlowNext, Push: Push1Push1, Pop: Pop3}
	ins := NewUnchecked(op, nil)
	if pushes, pops := ins.StackEffect(false); pushes != 2 || pops != 3 {
		t.Errorf("synthetic opcode: StackEffect = (%d, %d), want (2, 3)", pushes, pops)
	}
}
