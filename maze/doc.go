// Package maze models a rectangular maze as a read-only grid of cells,
// enabling oriented-state searches over it.
//
// What:
//
//   - Grid wraps a row-major slice of Wall/Passable cells with a designated
//     Start and End coordinate.
//   - Parse turns the plain-text representation ('#', '.', 'S', 'E') into a
//     validated Grid.
//   - Render draws the grid back, optionally marking a set of points.
//
// Why:
//
//   - Search packages need a grid that cannot change under them, with
//     O(1) bounds checks and dense indexing.
//   - Malformed input must be rejected before any search starts.
//
// Complexity:
//
//   - Parse, NewGrid, WithWall, Render: O(R×C) time and memory.
//   - At, Passable, InBounds, Index, Point: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a character outside "#.SE".
//   - ErrMissingStart / ErrMissingEnd: marker absent.
//   - ErrDuplicateStart / ErrDuplicateEnd: marker present more than once.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrMarkerOnWall: Start or End placed on (or walled over with) a Wall.
package maze
