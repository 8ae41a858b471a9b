package orm

import "errors"

var (
	// ErrEntityMarkerMissing is returned when a struct does not embed Entity.
	ErrEntityMarkerMissing = errors.New("orm: entity marker missing")

	// ErrPrimaryKeyMissing is returned when no field is tagged primaryKey.
	ErrPrimaryKeyMissing = errors.New("orm: primary key marker missing")

	// ErrMultiplePrimaryKeys is returned when more than one field is tagged primaryKey.
	ErrMultiplePrimaryKeys = errors.New("orm: multiple primary keys")

	// ErrNotStruct is returned when the input is not a struct, a pointer to
	// a struct, or is a nil pointer.
	ErrNotStruct = errors.New("orm: not a struct")

	// ErrInvalidTag is returned for a db tag option that is not recognized.
	ErrInvalidTag = errors.New("orm: invalid db tag")
)
