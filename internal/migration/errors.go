package migration

import "fmt"

// DirectoryAccessError is returned when the migrations directory cannot be listed.
type DirectoryAccessError struct {
	Dir string
	Err error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("failed to read migrations directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// MalformedStemError is returned when an existing up file does not start
// with a non-negative integer index.
type MalformedStemError struct {
	Stem string
	Err  error
}

func (e *MalformedStemError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed migration stem %q", e.Stem)
	}
	return fmt.Sprintf("malformed migration stem %q: %v", e.Stem, e.Err)
}

func (e *MalformedStemError) Unwrap() error {
	return e.Err
}
