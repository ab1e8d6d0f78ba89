package config

import (
	"errors"
	"fmt"
)

// ErrConfig matches every error produced while loading a config or match file.
var ErrConfig = errors.New("config")

// FormatError reports a line that is not a well-formed KEY = VALUE pair, or names an
// unknown key.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config format error on line %d: %s", e.Line, e.Msg)
	}
	return "config format error: " + e.Msg
}

func (e *FormatError) Is(target error) bool { return target == ErrConfig }

// ValueError reports a value that is not a positive integer.
type ValueError struct {
	Line   int
	Key    string
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config value error on line %d: %s=%q %s", e.Line, e.Key, e.Value, e.Reason)
	}
	return fmt.Sprintf("config value error: %s=%q %s", e.Key, e.Value, e.Reason)
}

func (e *ValueError) Is(target error) bool { return target == ErrConfig }

// BoundsError reports a lower bound above its upper bound.
type BoundsError struct {
	Terrain string
	Lower   int
	Upper   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("config bounds error: %s lower bound (%d) cannot be greater than upper bound (%d)",
		e.Terrain, e.Lower, e.Upper)
}

func (e *BoundsError) Is(target error) bool { return target == ErrConfig }

// FileError wraps a failure to open a config or match file. The underlying error is
// kept, so errors.Is(err, fs.ErrNotExist) and fs.ErrPermission work.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
func (e *FileError) Is(target error) bool { return target == ErrConfig }
