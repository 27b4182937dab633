package credentials

import "errors"

// Failure causes reported through [LoadResult.Err]. Callers classify them
// with errors.Is or [LoadResult.Reason].
var (
	// ErrNotFound indicates that no candidate path exists.
	ErrNotFound = errors.New("credential file not found in any search location")
	// ErrFileMissing indicates that the resolved path does not exist when it
	// is about to be read.
	ErrFileMissing = errors.New("credential file does not exist")
	// ErrParse indicates that the file is not a single JSON object.
	ErrParse = errors.New("error parsing JSON credential file")
	// ErrRead indicates any other failure while reading the file.
	ErrRead = errors.New("error loading credential file")
	// ErrWriteEnvFile indicates that the env file could not be read or
	// rewritten during a merge.
	ErrWriteEnvFile = errors.New("error writing credentials to env file")
)
