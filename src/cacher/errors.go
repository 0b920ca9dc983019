package cacher

import (
	"errors"
	"fmt"
)

// ErrAssetsDirNotFound is returned when no "assets" directory exists
// within the bounded parents-then-kids search.
var ErrAssetsDirNotFound = errors.New("assets directory not found")

// LoadError reports the first asset that failed to load during Populate.
// Name is the logical asset name, not the full path.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load texture %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
