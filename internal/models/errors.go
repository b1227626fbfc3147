package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoInputFile = errors.New("no plugin input file configured: set PLUGINS_INPUT_FILE or --input")
	ErrNoPlugins   = errors.New("no plugins found: the input file must list one plugin id per line")
	ErrNoCatalog   = errors.New("no catalog source configured")
)

// CatalogError wraps a failure to obtain or parse the plugin catalog.
type CatalogError struct {
	Op     string // fetch, read, parse
	Source string // URL or path
	Err    error
}

func (e *CatalogError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("catalog %s %s: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
