package cil

import "sort"

// opcodeTable maps numeric codes to their descriptors. Populated by
// register() during package initialization and read-only afterwards.
var opcodeTable = map[Code]OpCode{}

func register(op OpCode) OpCode {
	opcodeTable[op.Code] = op
	return op
}

// The CIL instruction set, ECMA-335 partition III. One descriptor per opcode;
// two-byte opcodes carry the 0xFE escape prefix in the high byte of Code.
var (
	OpNop    = register(OpCode{"nop", 0x00, InlineNone, FlowNext, Push0, Pop0})
	OpBreak  = register(OpCode{"break", 0x01, InlineNone, FlowBreak, Push0, Pop0})
	OpLdarg0 = register(OpCode{"ldarg.0", 0x02, InlineNone, FlowNext, Push1, Pop0})
	OpLdarg1 = register(OpCode{"ldarg.1", 0x03, InlineNone, FlowNext, Push1, Pop0})
	OpLdarg2 = register(OpCode{"ldarg.2", 0x04, InlineNone, FlowNext, Push1, Pop0})
	OpLdarg3 = register(OpCode{"ldarg.3", 0x05, InlineNone, FlowNext, Push1, Pop0})
	OpLdloc0 = register(OpCode{"ldloc.0", 0x06, InlineNone, FlowNext, Push1, Pop0})
	OpLdloc1 = register(OpCode{"ldloc.1", 0x07, InlineNone, FlowNext, Push1, Pop0})
	OpLdloc2 = register(OpCode{"ldloc.2", 0x08, InlineNone, FlowNext, Push1, Pop0})
	OpLdloc3 = register(OpCode{"ldloc.3", 0x09, InlineNone, FlowNext, Push1, Pop0})
	OpStloc0 = register(OpCode{"stloc.0", 0x0A, InlineNone, FlowNext, Push0, Pop1})
	OpStloc1 = register(OpCode{"stloc.1", 0x0B, InlineNone, FlowNext, Push0, Pop1})
	OpStloc2 = register(OpCode{"stloc.2", 0x0C, InlineNone, FlowNext, Push0, Pop1})
	OpStloc3 = register(OpCode{"stloc.3", 0x0D, InlineNone, FlowNext, Push0, Pop1})

	OpLdargS  = register(OpCode{"ldarg.s", 0x0E, ShortInlineVar, FlowNext, Push1, Pop0})
	OpLdargaS = register(OpCode{"ldarga.s", 0x0F, ShortInlineVar, FlowNext, Push1, Pop0})
	OpStargS  = register(OpCode{"starg.s", 0x10, ShortInlineVar, FlowNext, Push0, Pop1})
	OpLdlocS  = register(OpCode{"ldloc.s", 0x11, ShortInlineVar, FlowNext, Push1, Pop0})
	OpLdlocaS = register(OpCode{"ldloca.s", 0x12, ShortInlineVar, FlowNext, Push1, Pop0})
	OpStlocS  = register(OpCode{"stloc.s", 0x13, ShortInlineVar, FlowNext, Push0, Pop1})

	OpLdnull  = register(OpCode{"ldnull", 0x14, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI4M1 = register(OpCode{"ldc.i4.m1", 0x15, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI40  = register(OpCode{"ldc.i4.0", 0x16, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI41  = register(OpCode{"ldc.i4.1", 0x17, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI42  = register(OpCode{"ldc.i4.2", 0x18, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI43  = register(OpCode{"ldc.i4.3", 0x19, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI44  = register(OpCode{"ldc.i4.4", 0x1A, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI45  = register(OpCode{"ldc.i4.5", 0x1B, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI46  = register(OpCode{"ldc.i4.6", 0x1C, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI47  = register(OpCode{"ldc.i4.7", 0x1D, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI48  = register(OpCode{"ldc.i4.8", 0x1E, InlineNone, FlowNext, Push1, Pop0})
	OpLdcI4S  = register(OpCode{"ldc.i4.s", 0x1F, ShortInlineI, FlowNext, Push1, Pop0})
	OpLdcI4   = register(OpCode{"ldc.i4", 0x20, InlineI, FlowNext, Push1, Pop0})
	OpLdcI8   = register(OpCode{"ldc.i8", 0x21, InlineI8, FlowNext, Push1, Pop0})
	OpLdcR4   = register(OpCode{"ldc.r4", 0x22, ShortInlineR, FlowNext, Push1, Pop0})
	OpLdcR8   = register(OpCode{"ldc.r8", 0x23, InlineR, FlowNext, Push1, Pop0})

	OpDup = register(OpCode{"dup", 0x25, InlineNone, FlowNext, Push1Push1, Pop1})
	OpPop = register(OpCode{"pop", 0x26, InlineNone, FlowNext, Push0, Pop1})

	OpJmp   = register(OpCode{"jmp", 0x27, InlineMethod, FlowCall, Push0, Pop0})
	OpCall  = register(OpCode{"call", 0x28, InlineMethod, FlowCall, VarPush, VarPop})
	OpCalli = register(OpCode{"calli", 0x29, InlineSig, FlowCall, VarPush, VarPop})
	OpRet   = register(OpCode{"ret", 0x2A, InlineNone, FlowReturn, Push0, VarPop})

	OpBrS      = register(OpCode{"br.s", 0x2B, ShortInlineBrTarget, FlowBranch, Push0, Pop0})
	OpBrfalseS = register(OpCode{"brfalse.s", 0x2C, ShortInlineBrTarget, FlowCondBranch, Push0, Pop1})
	OpBrtrueS  = register(OpCode{"brtrue.s", 0x2D, ShortInlineBrTarget, FlowCondBranch, Push0, Pop1})
	OpBeqS     = register(OpCode{"beq.s", 0x2E, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgeS     = register(OpCode{"bge.s", 0x2F, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgtS     = register(OpCode{"bgt.s", 0x30, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBleS     = register(OpCode{"ble.s", 0x31, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBltS     = register(OpCode{"blt.s", 0x32, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBneUnS   = register(OpCode{"bne.un.s", 0x33, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgeUnS   = register(OpCode{"bge.un.s", 0x34, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgtUnS   = register(OpCode{"bgt.un.s", 0x35, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBleUnS   = register(OpCode{"ble.un.s", 0x36, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBltUnS   = register(OpCode{"blt.un.s", 0x37, ShortInlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBr       = register(OpCode{"br", 0x38, InlineBrTarget, FlowBranch, Push0, Pop0})
	OpBrfalse  = register(OpCode{"brfalse", 0x39, InlineBrTarget, FlowCondBranch, Push0, Pop1})
	OpBrtrue   = register(OpCode{"brtrue", 0x3A, InlineBrTarget, FlowCondBranch, Push0, Pop1})
	OpBeq      = register(OpCode{"beq", 0x3B, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBge      = register(OpCode{"bge", 0x3C, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgt      = register(OpCode{"bgt", 0x3D, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBle      = register(OpCode{"ble", 0x3E, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBlt      = register(OpCode{"blt", 0x3F, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBneUn    = register(OpCode{"bne.un", 0x40, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgeUn    = register(OpCode{"bge.un", 0x41, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBgtUn    = register(OpCode{"bgt.un", 0x42, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBleUn    = register(OpCode{"ble.un", 0x43, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpBltUn    = register(OpCode{"blt.un", 0x44, InlineBrTarget, FlowCondBranch, Push0, Pop2})
	OpSwitch   = register(OpCode{"switch", 0x45, InlineSwitch, FlowCondBranch, Push0, Pop1})

	OpLdindI1  = register(OpCode{"ldind.i1", 0x46, InlineNone, FlowNext, Push1, Pop1})
	OpLdindU1  = register(OpCode{"ldind.u1", 0x47, InlineNone, FlowNext, Push1, Pop1})
	OpLdindI2  = register(OpCode{"ldind.i2", 0x48, InlineNone, FlowNext, Push1, Pop1})
	OpLdindU2  = register(OpCode{"ldind.u2", 0x49, InlineNone, FlowNext, Push1, Pop1})
	OpLdindI4  = register(OpCode{"ldind.i4", 0x4A, InlineNone, FlowNext, Push1, Pop1})
	OpLdindU4  = register(OpCode{"ldind.u4", 0x4B, InlineNone, FlowNext, Push1, Pop1})
	OpLdindI8  = register(OpCode{"ldind.i8", 0x4C, InlineNone, FlowNext, Push1, Pop1})
	OpLdindI   = register(OpCode{"ldind.i", 0x4D, InlineNone, FlowNext, Push1, Pop1})
	OpLdindR4  = register(OpCode{"ldind.r4", 0x4E, InlineNone, FlowNext, Push1, Pop1})
	OpLdindR8  = register(OpCode{"ldind.r8", 0x4F, InlineNone, FlowNext, Push1, Pop1})
	OpLdindRef = register(OpCode{"ldind.ref", 0x50, InlineNone, FlowNext, Push1, Pop1})
	OpStindRef = register(OpCode{"stind.ref", 0x51, InlineNone, FlowNext, Push0, Pop2})
	OpStindI1  = register(OpCode{"stind.i1", 0x52, InlineNone, FlowNext, Push0, Pop2})
	OpStindI2  = register(OpCode{"stind.i2", 0x53, InlineNone, FlowNext, Push0, Pop2})
	OpStindI4  = register(OpCode{"stind.i4", 0x54, InlineNone, FlowNext, Push0, Pop2})
	OpStindI8  = register(OpCode{"stind.i8", 0x55, InlineNone, FlowNext, Push0, Pop2})
	OpStindR4  = register(OpCode{"stind.r4", 0x56, InlineNone, FlowNext, Push0, Pop2})
	OpStindR8  = register(OpCode{"stind.r8", 0x57, InlineNone, FlowNext, Push0, Pop2})

	OpAdd   = register(OpCode{"add", 0x58, InlineNone, FlowNext, Push1, Pop2})
	OpSub   = register(OpCode{"sub", 0x59, InlineNone, FlowNext, Push1, Pop2})
	OpMul   = register(OpCode{"mul", 0x5A, InlineNone, FlowNext, Push1, Pop2})
	OpDiv   = register(OpCode{"div", 0x5B, InlineNone, FlowNext, Push1, Pop2})
	OpDivUn = register(OpCode{"div.un", 0x5C, InlineNone, FlowNext, Push1, Pop2})
	OpRem   = register(OpCode{"rem", 0x5D, InlineNone, FlowNext, Push1, Pop2})
	OpRemUn = register(OpCode{"rem.un", 0x5E, InlineNone, FlowNext, Push1, Pop2})
	OpAnd   = register(OpCode{"and", 0x5F, InlineNone, FlowNext, Push1, Pop2})
	OpOr    = register(OpCode{"or", 0x60, InlineNone, FlowNext, Push1, Pop2})
	OpXor   = register(OpCode{"xor", 0x61, InlineNone, FlowNext, Push1, Pop2})
	OpShl   = register(OpCode{"shl", 0x62, InlineNone, FlowNext, Push1, Pop2})
	OpShr   = register(OpCode{"shr", 0x63, InlineNone, FlowNext, Push1, Pop2})
	OpShrUn = register(OpCode{"shr.un", 0x64, InlineNone, FlowNext, Push1, Pop2})
	OpNeg   = register(OpCode{"neg", 0x65, InlineNone, FlowNext, Push1, Pop1})
	OpNot   = register(OpCode{"not", 0x66, InlineNone, FlowNext, Push1, Pop1})

	OpConvI1 = register(OpCode{"conv.i1", 0x67, InlineNone, FlowNext, Push1, Pop1})
	OpConvI2 = register(OpCode{"conv.i2", 0x68, InlineNone, FlowNext, Push1, Pop1})
	OpConvI4 = register(OpCode{"conv.i4", 0x69, InlineNone, FlowNext, Push1, Pop1})
	OpConvI8 = register(OpCode{"conv.i8", 0x6A, InlineNone, FlowNext, Push1, Pop1})
	OpConvR4 = register(OpCode{"conv.r4", 0x6B, InlineNone, FlowNext, Push1, Pop1})
	OpConvR8 = register(OpCode{"conv.r8", 0x6C, InlineNone, FlowNext, Push1, Pop1})
	OpConvU4 = register(OpCode{"conv.u4", 0x6D, InlineNone, FlowNext, Push1, Pop1})
	OpConvU8 = register(OpCode{"conv.u8", 0x6E, InlineNone, FlowNext, Push1, Pop1})

	OpCallvirt  = register(OpCode{"callvirt", 0x6F, InlineMethod, FlowCall, VarPush, VarPop})
	OpCpobj     = register(OpCode{"cpobj", 0x70, InlineType, FlowNext, Push0, Pop2})
	OpLdobj     = register(OpCode{"ldobj", 0x71, InlineType, FlowNext, Push1, Pop1})
	OpLdstr     = register(OpCode{"ldstr", 0x72, InlineString, FlowNext, Push1, Pop0})
	OpNewobj    = register(OpCode{"newobj", 0x73, InlineMethod, FlowCall, VarPush, VarPop})
	OpCastclass = register(OpCode{"castclass", 0x74, InlineType, FlowNext, Push1, Pop1})
	OpIsinst    = register(OpCode{"isinst", 0x75, InlineType, FlowNext, Push1, Pop1})
	OpConvRUn   = register(OpCode{"conv.r.un", 0x76, InlineNone, FlowNext, Push1, Pop1})
	OpUnbox     = register(OpCode{"unbox", 0x79, InlineType, FlowNext, Push1, Pop1})
	OpThrow     = register(OpCode{"throw", 0x7A, InlineNone, FlowThrow, Push0, Pop1})

	OpLdfld   = register(OpCode{"ldfld", 0x7B, InlineField, FlowNext, Push1, Pop1})
	OpLdflda  = register(OpCode{"ldflda", 0x7C, InlineField, FlowNext, Push1, Pop1})
	OpStfld   = register(OpCode{"stfld", 0x7D, InlineField, FlowNext, Push0, Pop2})
	OpLdsfld  = register(OpCode{"ldsfld", 0x7E, InlineField, FlowNext, Push1, Pop0})
	OpLdsflda = register(OpCode{"ldsflda", 0x7F, InlineField, FlowNext, Push1, Pop0})
	OpStsfld  = register(OpCode{"stsfld", 0x80, InlineField, FlowNext, Push0, Pop1})
	OpStobj   = register(OpCode{"stobj", 0x81, InlineType, FlowNext, Push0, Pop2})

	OpConvOvfI1Un = register(OpCode{"conv.ovf.i1.un", 0x82, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI2Un = register(OpCode{"conv.ovf.i2.un", 0x83, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI4Un = register(OpCode{"conv.ovf.i4.un", 0x84, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI8Un = register(OpCode{"conv.ovf.i8.un", 0x85, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU1Un = register(OpCode{"conv.ovf.u1.un", 0x86, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU2Un = register(OpCode{"conv.ovf.u2.un", 0x87, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU4Un = register(OpCode{"conv.ovf.u4.un", 0x88, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU8Un = register(OpCode{"conv.ovf.u8.un", 0x89, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfIUn  = register(OpCode{"conv.ovf.i.un", 0x8A, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfUUn  = register(OpCode{"conv.ovf.u.un", 0x8B, InlineNone, FlowNext, Push1, Pop1})

	OpBox     = register(OpCode{"box", 0x8C, InlineType, FlowNext, Push1, Pop1})
	OpNewarr  = register(OpCode{"newarr", 0x8D, InlineType, FlowNext, Push1, Pop1})
	OpLdlen   = register(OpCode{"ldlen", 0x8E, InlineNone, FlowNext, Push1, Pop1})
	OpLdelema = register(OpCode{"ldelema", 0x8F, InlineType, FlowNext, Push1, Pop2})

	OpLdelemI1  = register(OpCode{"ldelem.i1", 0x90, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemU1  = register(OpCode{"ldelem.u1", 0x91, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemI2  = register(OpCode{"ldelem.i2", 0x92, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemU2  = register(OpCode{"ldelem.u2", 0x93, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemI4  = register(OpCode{"ldelem.i4", 0x94, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemU4  = register(OpCode{"ldelem.u4", 0x95, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemI8  = register(OpCode{"ldelem.i8", 0x96, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemI   = register(OpCode{"ldelem.i", 0x97, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemR4  = register(OpCode{"ldelem.r4", 0x98, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemR8  = register(OpCode{"ldelem.r8", 0x99, InlineNone, FlowNext, Push1, Pop2})
	OpLdelemRef = register(OpCode{"ldelem.ref", 0x9A, InlineNone, FlowNext, Push1, Pop2})
	OpStelemI   = register(OpCode{"stelem.i", 0x9B, InlineNone, FlowNext, Push0, Pop3})
	OpStelemI1  = register(OpCode{"stelem.i1", 0x9C, InlineNone, FlowNext, Push0, Pop3})
	OpStelemI2  = register(OpCode{"stelem.i2", 0x9D, InlineNone, FlowNext, Push0, Pop3})
	OpStelemI4  = register(OpCode{"stelem.i4", 0x9E, InlineNone, FlowNext, Push0, Pop3})
	OpStelemI8  = register(OpCode{"stelem.i8", 0x9F, InlineNone, FlowNext, Push0, Pop3})
	OpStelemR4  = register(OpCode{"stelem.r4", 0xA0, InlineNone, FlowNext, Push0, Pop3})
	OpStelemR8  = register(OpCode{"stelem.r8", 0xA1, InlineNone, FlowNext, Push0, Pop3})
	OpStelemRef = register(OpCode{"stelem.ref", 0xA2, InlineNone, FlowNext, Push0, Pop3})
	OpLdelem    = register(OpCode{"ldelem", 0xA3, InlineType, FlowNext, Push1, Pop2})
	OpStelem    = register(OpCode{"stelem", 0xA4, InlineType, FlowNext, Push0, Pop3})
	OpUnboxAny  = register(OpCode{"unbox.any", 0xA5, InlineType, FlowNext, Push1, Pop1})

	OpConvOvfI1 = register(OpCode{"conv.ovf.i1", 0xB3, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU1 = register(OpCode{"conv.ovf.u1", 0xB4, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI2 = register(OpCode{"conv.ovf.i2", 0xB5, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU2 = register(OpCode{"conv.ovf.u2", 0xB6, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI4 = register(OpCode{"conv.ovf.i4", 0xB7, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU4 = register(OpCode{"conv.ovf.u4", 0xB8, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI8 = register(OpCode{"conv.ovf.i8", 0xB9, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU8 = register(OpCode{"conv.ovf.u8", 0xBA, InlineNone, FlowNext, Push1, Pop1})

	OpRefanyval = register(OpCode{"refanyval", 0xC2, InlineType, FlowNext, Push1, Pop1})
	OpCkfinite  = register(OpCode{"ckfinite", 0xC3, InlineNone, FlowNext, Push1, Pop1})
	OpMkrefany  = register(OpCode{"mkrefany", 0xC6, InlineType, FlowNext, Push1, Pop1})
	OpLdtoken   = register(OpCode{"ldtoken", 0xD0, InlineTok, FlowNext, Push1, Pop0})

	OpConvU2   = register(OpCode{"conv.u2", 0xD1, InlineNone, FlowNext, Push1, Pop1})
	OpConvU1   = register(OpCode{"conv.u1", 0xD2, InlineNone, FlowNext, Push1, Pop1})
	OpConvI    = register(OpCode{"conv.i", 0xD3, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfI = register(OpCode{"conv.ovf.i", 0xD4, InlineNone, FlowNext, Push1, Pop1})
	OpConvOvfU = register(OpCode{"conv.ovf.u", 0xD5, InlineNone, FlowNext, Push1, Pop1})

	OpAddOvf   = register(OpCode{"add.ovf", 0xD6, InlineNone, FlowNext, Push1, Pop2})
	OpAddOvfUn = register(OpCode{"add.ovf.un", 0xD7, InlineNone, FlowNext, Push1, Pop2})
	OpMulOvf   = register(OpCode{"mul.ovf", 0xD8, InlineNone, FlowNext, Push1, Pop2})
	OpMulOvfUn = register(OpCode{"mul.ovf.un", 0xD9, InlineNone, FlowNext, Push1, Pop2})
	OpSubOvf   = register(OpCode{"sub.ovf", 0xDA, InlineNone, FlowNext, Push1, Pop2})
	OpSubOvfUn = register(OpCode{"sub.ovf.un", 0xDB, InlineNone, FlowNext, Push1, Pop2})

	OpEndfinally = register(OpCode{"endfinally", 0xDC, InlineNone, FlowReturn, Push0, PopAll})
	OpLeave      = register(OpCode{"leave", 0xDD, InlineBrTarget, FlowBranch, Push0, PopAll})
	OpLeaveS     = register(OpCode{"leave.s", 0xDE, ShortInlineBrTarget, FlowBranch, Push0, PopAll})
	OpStindI     = register(OpCode{"stind.i", 0xDF, InlineNone, FlowNext, Push0, Pop2})
	OpConvU      = register(OpCode{"conv.u", 0xE0, InlineNone, FlowNext, Push1, Pop1})

	OpArglist     = register(OpCode{"arglist", 0xFE00, InlineNone, FlowNext, Push1, Pop0})
	OpCeq         = register(OpCode{"ceq", 0xFE01, InlineNone, FlowNext, Push1, Pop2})
	OpCgt         = register(OpCode{"cgt", 0xFE02, InlineNone, FlowNext, Push1, Pop2})
	OpCgtUn       = register(OpCode{"cgt.un", 0xFE03, InlineNone, FlowNext, Push1, Pop2})
	OpClt         = register(OpCode{"clt", 0xFE04, InlineNone, FlowNext, Push1, Pop2})
	OpCltUn       = register(OpCode{"clt.un", 0xFE05, InlineNone, FlowNext, Push1, Pop2})
	OpLdftn       = register(OpCode{"ldftn", 0xFE06, InlineMethod, FlowNext, Push1, Pop0})
	OpLdvirtftn   = register(OpCode{"ldvirtftn", 0xFE07, InlineMethod, FlowNext, Push1, Pop1})
	OpLdarg       = register(OpCode{"ldarg", 0xFE09, InlineVar, FlowNext, Push1, Pop0})
	OpLdarga      = register(OpCode{"ldarga", 0xFE0A, InlineVar, FlowNext, Push1, Pop0})
	OpStarg       = register(OpCode{"starg", 0xFE0B, InlineVar, FlowNext, Push0, Pop1})
	OpLdloc       = register(OpCode{"ldloc", 0xFE0C, InlineVar, FlowNext, Push1, Pop0})
	OpLdloca      = register(OpCode{"ldloca", 0xFE0D, InlineVar, FlowNext, Push1, Pop0})
	OpStloc       = register(OpCode{"stloc", 0xFE0E, InlineVar, FlowNext, Push0, Pop1})
	OpLocalloc    = register(OpCode{"localloc", 0xFE0F, InlineNone, FlowNext, Push1, Pop1})
	OpEndfilter   = register(OpCode{"endfilter", 0xFE11, InlineNone, FlowReturn, Push0, Pop1})
	OpUnaligned   = register(OpCode{"unaligned.", 0xFE12, ShortInlineI, FlowMeta, Push0, Pop0})
	OpVolatile    = register(OpCode{"volatile.", 0xFE13, InlineNone, FlowMeta, Push0, Pop0})
	OpTailcall    = register(OpCode{"tail.", 0xFE14, InlineNone, FlowMeta, Push0, Pop0})
	OpInitobj     = register(OpCode{"initobj", 0xFE15, InlineType, FlowNext, Push0, Pop1})
	OpConstrained = register(OpCode{"constrained.", 0xFE16, InlineType, FlowMeta, Push0, Pop0})
	OpCpblk       = register(OpCode{"cpblk", 0xFE17, InlineNone, FlowNext, Push0, Pop3})
	OpInitblk     = register(OpCode{"initblk", 0xFE18, InlineNone, FlowNext, Push0, Pop3})
	OpRethrow     = register(OpCode{"rethrow", 0xFE1A, InlineNone, FlowThrow, Push0, Pop0})
	OpSizeof      = register(OpCode{"sizeof", 0xFE1C, InlineType, FlowNext, Push1, Pop0})
	OpRefanytype  = register(OpCode{"refanytype", 0xFE1D, InlineNone, FlowNext, Push1, Pop1})
	OpReadonly    = register(OpCode{"readonly.", 0xFE1E, InlineNone, FlowMeta, Push0, Pop0})
)

// Lookup returns the descriptor for a numeric code.
func Lookup(code Code) (OpCode, bool) {
	op, ok := opcodeTable[code]
	return op, ok
}

// LookupName returns the descriptor with the given assembler name.
// O(n); intended for tooling, not hot paths.
func LookupName(name string) (OpCode, bool) {
	for _, op := range opcodeTable {
		if op.Name == name {
			return op, true
		}
	}
	return OpCode{}, false
}

// AllOpCodes returns every descriptor in the table, ordered by code.
func AllOpCodes() []OpCode {
	ops := make([]OpCode, 0, len(opcodeTable))
	for _, op := range opcodeTable {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Code < ops[j].Code })
	return ops
}

// OpCodeCount returns the number of opcodes in the table.
func OpCodeCount() int {
	return len(opcodeTable)
}
