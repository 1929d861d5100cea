package garden

import "errors"

var (
	// ErrStorageUnavailable indicates the persistence layer could not be reached
	ErrStorageUnavailable = errors.New("garden storage unavailable")

	// ErrStorageWrite indicates the snapshot could not be written
	ErrStorageWrite = errors.New("garden storage write failed")

	// ErrNotLoaded indicates an operation ran before Load
	ErrNotLoaded = errors.New("garden data not loaded")

	// ErrCorruptSnapshot indicates the stored snapshot could not be decoded
	ErrCorruptSnapshot = errors.New("garden snapshot is corrupt")

	// ErrUnsupportedVersion indicates a snapshot written by a newer schema
	ErrUnsupportedVersion = errors.New("unsupported garden snapshot version")

	// ErrUnknownCategory indicates an append to a category that does not exist
	ErrUnknownCategory = errors.New("unknown record category")
)
