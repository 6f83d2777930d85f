// Package cil models single CIL (ECMA-335) instructions for bytecode
// tooling: assemblers, disassemblers, and verifiers.
//
// The package covers three things, all pure functions over immutable data:
//
//   - The Instruction value type: an opcode + operand pair with a byte
//     offset. One validated constructor exists per operand category, each
//     rejecting opcodes whose declared category does not match; NewUnchecked
//     bypasses validation for decoders that have already checked raw bytes.
//
//   - Encoded-size calculation: Instruction.Size reports the exact number of
//     bytes the instruction occupies on the wire. Downstream branch-offset
//     and method-body layout computations depend on these numbers being
//     bit-exact.
//
//   - Stack-effect calculation: Instruction.StackEffect reports how many
//     values an instruction pushes and pops, the input to max-stack analysis
//     and verification. Call-family opcodes derive the counts from the
//     operand's method signature; everything else comes from the opcode's
//     static stack-behaviour classes.
//
// The opcode table (~220 descriptors from ECMA-335 partition III) lives in
// opcodes.go. OpCode values are self-describing: instructions carry their
// descriptor by value and the calculators read metadata only from it, so
// tests can use synthetic descriptors and nothing in the package depends on
// ambient global state.
//
// Everything here may be used concurrently without coordination, with one
// caveat: Instruction.Offset is written once by a layout pass, and that
// write must happen before any concurrent read of offsets.
//
// What this package deliberately does not do: parse or emit the binary
// instruction stream, model method bodies or exception handlers, or resolve
// metadata. Type, field, and method references are opaque payloads owned
// elsewhere.
package cil
