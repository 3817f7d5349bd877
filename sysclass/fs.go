// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sysclass provides typed access to device classes exposed through
// the sysfs pseudo-filesystem.
package sysclass

import (
	"os"

	"github.com/siderolabs/gen/xslices"
)

// FS abstracts the pseudo-filesystem the device classes are read from.
//
// The production implementation reads the live sysfs mount; tests substitute
// a fixture tree. All paths are absolute host paths.
type FS interface {
	// Root returns the mount point of the pseudo-filesystem.
	Root() string
	// ListDir returns the names of the immediate entries of the directory.
	ListDir(path string) ([]string, error)
	// Exists reports whether the path exists.
	Exists(path string) bool
	// ReadFile returns the full contents of the file as text.
	ReadFile(path string) (string, error)
}

// DirFS returns an FS rooted at the given directory.
func DirFS(root string) FS {
	return dirFS{root: root}
}

// Default returns an FS over the standard sysfs mount point.
func Default() FS {
	return DirFS("/sys")
}

type dirFS struct {
	root string
}

func (d dirFS) Root() string {
	return d.root
}

func (d dirFS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	return xslices.Map(entries, func(entry os.DirEntry) string {
		return entry.Name()
	}), nil
}

func (d dirFS) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func (d dirFS) ReadFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(contents), nil
}
