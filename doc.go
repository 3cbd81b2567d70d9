// Package icepath counts the ways across an ice field.
//
// 🚀 What is icepath?
//
//	A ship enters a rectangular ice field at the top-left cell and must
//	leave at the bottom-right cell, moving only right or down, never
//	through an iceberg. icepath counts the distinct routes:
//
//	  . . . .
//	  . X . .      3 routes from ↖ to ↘
//	  . . . X
//	  X . . .
//
// Packages:
//
//	grid/          — immutable cell matrix, text format, random fields
//	path/          — right/down cursor used to replay candidate routes
//	icebergs/      — Exhaustive (2^steps enumeration) and DynProg (O(R·C))
//	                 counters, Table, DynProgBig, CrossCheck
//	cmd/icepath/   — count, verify and gen commands
//
// Both counters return the same number on every grid the exhaustive one
// can handle; that agreement is the correctness oracle of the repository.
//
//	go install github.com/katalvlaran/icepath/cmd/icepath@latest
package icepath
