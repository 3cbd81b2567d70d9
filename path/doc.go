// Package path implements the candidate cursor used to replay a sequence
// of right/down moves over a grid.Grid.
//
// A Path starts at (0,0) and only ever advances one cell right or one
// cell down. A move is legal iff the destination cell is inside the grid
// and is not an iceberg; AddStep refuses illegal moves and leaves the
// cursor where it was.
//
// Paths are cheap, single-owner values: create one per candidate and
// discard it afterwards. They are not safe for concurrent mutation.
package path
