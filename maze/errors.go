package maze

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidCell indicates a character outside the maze alphabet.
	ErrInvalidCell = errors.New("maze: invalid cell character")
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = errors.New("maze: missing start marker")
	// ErrMissingEnd indicates no end marker was found.
	ErrMissingEnd = errors.New("maze: missing end marker")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("maze: more than one start marker")
	// ErrDuplicateEnd indicates more than one end marker.
	ErrDuplicateEnd = errors.New("maze: more than one end marker")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrMarkerOnWall indicates Start or End would sit on a Wall cell.
	ErrMarkerOnWall = errors.New("maze: start and end must be passable")
)
