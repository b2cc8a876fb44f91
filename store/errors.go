package store

import "errors"

var (
	ErrObjectNotFound = errors.New("store: object not found")
	ErrObjectExists   = errors.New("store: object already exists")
	ErrInvalidPath    = errors.New("store: storage path is invalid")
	ErrPathIsNotDir   = errors.New("store: expected the path to be an existing directory")
	ErrNotIndexPath   = errors.New("store: storage path is not an index payload path")
)
