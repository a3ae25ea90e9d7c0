package filesystem

import "fmt"

// DirectoryAccessError is returned when a directory cannot be listed.
type DirectoryAccessError struct {
	Path string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("cannot list directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// FileReadError is returned when a directory entry cannot be read as text.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
