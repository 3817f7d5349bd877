// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sysclass

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/siderolabs/gen/xslices"
)

// Class binds an entity type to its instance directories under
// <root>/class/<name>.
//
// The wrap function is the unchecked constructor of the entity: it is only
// ever invoked with paths produced by enumeration or validated lookup.
type Class[T any] struct {
	wrap func(Dir) T
	name string
}

// NewClass binds the class subdirectory name to the entity constructor.
func NewClass[T any](name string, wrap func(Dir) T) Class[T] {
	return Class[T]{name: name, wrap: wrap}
}

// Name returns the class subdirectory name, e.g. "block".
func (c Class[T]) Name() string {
	return c.name
}

func (c Class[T]) root(fsys FS) string {
	return filepath.Join(fsys.Root(), "class", c.name)
}

// All returns one entity per instance directory of the class, sorted by name.
//
// Listed entries are wrapped without re-validation: a name reported by the
// pseudo-filesystem is a valid instance by construction.
func (c Class[T]) All(fsys FS) ([]T, error) {
	root := c.root(fsys)

	names, err := fsys.ListDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing class %q: %w", c.name, err)
	}

	slices.Sort(names)

	return xslices.Map(names, func(name string) T {
		return c.wrap(Dir{fs: fsys, path: filepath.Join(root, name)})
	}), nil
}

// FromName returns the instance with the given name.
//
// The error wraps fs.ErrNotExist when the instance directory is absent.
func (c Class[T]) FromName(fsys FS, name string) (T, error) {
	path := filepath.Join(c.root(fsys), name)

	if !fsys.Exists(path) {
		var zero T

		return zero, fmt.Errorf("class %q has no instance %q: %w", c.name, name, fs.ErrNotExist)
	}

	return c.wrap(Dir{fs: fsys, path: path}), nil
}
