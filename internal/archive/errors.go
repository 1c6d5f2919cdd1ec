package archive

import "fmt"

// LayoutError reports a working directory without the expected attachment
// layout. It is recoverable: callers report it and exit with a data-error
// status rather than terminating abruptly.
type LayoutError struct {
	MetadataPath string
	DirPath      string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("Could not find `%s` file and/or `%s/` directory. This suggests that either (a) your archive contains no attachments or (b) you're not in a directory created when you extract a GitHub archive.", e.MetadataPath, e.DirPath)
}

// FormatError reports a metadata file that could not be read or decoded into
// attachment records. Recoverable, same as LayoutError.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Could not read attachments metadata files: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IntegrityError reports metadata referencing a file that is missing or
// unreadable on disk. The archive itself is corrupt or incomplete, so this is
// not recoverable: callers terminate instead of degrading.
type IntegrityError struct {
	Path string
	Err  error
}

func (e *IntegrityError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Could not find listed attachment file `%s`. Please make sure you're running this tool in the directory created when you extract a GitHub archive.", e.Path)
	}
	return fmt.Sprintf("Could not read listed attachment file `%s`: %v", e.Path, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// ReferenceError reports an asset reference that cannot name a file inside
// the archive, before any filesystem access. Same fatal class as
// IntegrityError: metadata pointing outside its own archive is corrupt.
type ReferenceError struct {
	Ref    string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Invalid asset reference `%s`: %s.", e.Ref, e.Reason)
}
