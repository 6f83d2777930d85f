package cil

// PopsAll is the pop count reported for instructions that discard the entire
// evaluation stack (leave, leave.s, endfinally). It is a sentinel, not a
// fixed count.
const PopsAll = -1

// StackEffect reports how many values the instruction pushes onto and pops
// off the evaluation stack. pops == PopsAll means the whole stack is
// discarded.
//
// methodHasReturnValue is only consulted for ret: a method with a return
// value pops it, a void method pops nothing. It is the one piece of context
// the opcode table cannot supply.
//
// Call-family opcodes derive their effect from the operand's method
// signature. If the operand is not a resolvable signature the result is
// (0, 0): the calculator is a best-effort analysis and must keep making
// progress over partially-resolved metadata.
func (ins *Instruction) StackEffect(methodHasReturnValue bool) (pushes, pops int) {
	if ins.OpCode.FlowControl == FlowCall {
		return ins.callStackEffect()
	}
	return ins.staticStackEffect(methodHasReturnValue)
}

func (ins *Instruction) callStackEffect() (pushes, pops int) {
	code := ins.OpCode.Code

	// The stack must be empty when jmp executes; it neither pushes nor pops.
	if code == OpJmp.Code {
		return 0, 0
	}

	sig := ins.methodSig()
	if sig == nil {
		return 0, 0
	}

	// newobj pushes the created instance even though the underlying
	// constructor signature is void-returning. This carve-out applies to
	// newobj only, never to ordinary void calls.
	if sig.ReturnsValue || (code == OpNewobj.Code && sig.HasThis) {
		pushes = 1
	}

	pops = len(sig.Params)
	// newobj has no receiver to pop: the instance does not exist yet.
	if sig.ImplicitThis() && code != OpNewobj.Code {
		pops++
	}
	// calli additionally consumes the function pointer.
	if code == OpCalli.Code {
		pops++
	}
	return pushes, pops
}

// methodSig resolves the call signature from the operand: a method reference
// carrying one, or a bare standalone signature (calli). Returns nil when the
// operand is anything else or the reference is unresolved.
func (ins *Instruction) methodSig() *MethodSig {
	switch o := ins.Operand.(type) {
	case *MethodRef:
		if o == nil {
			return nil
		}
		return o.Sig
	case *MethodSig:
		return o
	default:
		return nil
	}
}

func (ins *Instruction) staticStackEffect(methodHasReturnValue bool) (pushes, pops int) {
	switch ins.OpCode.Push {
	case Push0, VarPush:
		pushes = 0
	case Push1:
		pushes = 1
	case Push1Push1:
		pushes = 2
	}

	switch ins.OpCode.Pop {
	case Pop0:
		pops = 0
	case Pop1:
		pops = 1
	case Pop2:
		pops = 2
	case Pop3:
		pops = 3
	case PopAll:
		pops = PopsAll
	case VarPop:
		if methodHasReturnValue {
			pops = 1
		}
	}
	return pushes, pops
}
