// Package cpu implements a simplified x86-64 inspired processor that
// executes textual instructions.
//
// The processor consists of a closed register file (RAX..RSP, R0..R15
// and their width aliases as independent slots, segment, control, debug, x87, MMX and
// SIMD storage), open condition flags written by CMP, a bounds checked
// memory bank, and a stack that grows down from the top of memory toward
// the base held in SS.
//
// Each call to Cpu.Execute is a self-contained step: the instruction is
// normalized, dispatched through the opcode table, its operands resolved,
// and its effects applied in full or not at all.
package cpu
