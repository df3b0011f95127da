// Package puzzle reads level input files, dispatches each query line to the
// search package, and renders one output line per query.
//
// Input layout:
//
//	N            number of map rows
//	<N rows>     map rows of 'L' and 'W'
//	Q            number of queries
//	<Q lines>    one query per line
//
// Query forms by Mode:
//
//	route     "x,y x,y"        -> space-joined path, empty when unreachable
//	same      "x,y x,y"        -> SAME | DIFFERENT
//	validate  "x,y x,y ..."    -> VALID | INVALID
//	trace     "x,y"            -> space-joined boundary ring
//
// A query that fails (bad coordinates, no water near an island) yields an
// empty output line and a Result.Err; the rest of the batch is unaffected.
package puzzle
