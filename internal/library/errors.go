package library

import "errors"

// ErrNotFound indicates the requested song or entry does not exist.
var ErrNotFound = errors.New("not found")

// ErrNameRequired indicates a raw entry or edit arrived without a song name.
// Parsers filter empty names out, so hitting this is a caller bug.
var ErrNameRequired = errors.New("song name is required")

// ErrMergeConfirmationRequired indicates a rename targets an existing song and
// the caller has not confirmed merging the two groups.
var ErrMergeConfirmationRequired = errors.New("a song with this name and singer already exists")

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")
