// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sysclass

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Dir is the backing directory of a class instance.
//
// It carries no state beyond the path: every read goes to the
// pseudo-filesystem, so attribute values are always live.
type Dir struct {
	fs   FS
	path string
}

// NewDir binds a directory handle without validating that the path exists.
//
// It is intended for navigation code deriving sibling or parent paths from an
// instance produced by Class.All or Class.FromName; reading attributes of a
// nonexistent directory fails with fs.ErrNotExist. Use Class.FromName for
// validated lookups.
func NewDir(fsys FS, path string) Dir {
	return Dir{fs: fsys, path: path}
}

// FS returns the pseudo-filesystem the directory is read from.
func (d Dir) FS() FS {
	return d.fs
}

// Path returns the absolute instance directory.
func (d Dir) Path() string {
	return d.path
}

// Name returns the instance name, the last path element.
func (d Dir) Name() string {
	return filepath.Base(d.path)
}

// Exists reports whether rel exists under the instance directory.
func (d Dir) Exists(rel string) bool {
	return d.fs.Exists(filepath.Join(d.path, rel))
}

// List returns the entry names of the subdirectory rel.
func (d Dir) List(rel string) ([]string, error) {
	return d.fs.ListDir(filepath.Join(d.path, rel))
}

// ReadFile returns the contents of the attribute file rel with trailing
// whitespace trimmed.
//
// Attributes the device does not expose fail with fs.ErrNotExist.
func (d Dir) ReadFile(rel string) (string, error) {
	contents, err := d.fs.ReadFile(filepath.Join(d.path, rel))
	if err != nil {
		return "", err
	}

	return strings.TrimRight(contents, " \t\r\n"), nil
}

// ParseUint64 reads rel and parses it as an unsigned decimal.
func (d Dir) ParseUint64(rel string) (uint64, error) {
	return parseUint(d, rel, 64)
}

// ParseUint8 reads rel and parses it as an unsigned decimal byte.
func (d Dir) ParseUint8(rel string) (uint8, error) {
	v, err := parseUint(d, rel, 8)

	return uint8(v), err
}

// ParseUint reads rel and parses it as an unsigned decimal.
func (d Dir) ParseUint(rel string) (uint, error) {
	v, err := parseUint(d, rel, 0)

	return uint(v), err
}

// ParseFloat64 reads rel and parses it as a decimal float.
func (d Dir) ParseFloat64(rel string) (float64, error) {
	text, err := d.ReadFile(rel)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Path: filepath.Join(d.path, rel), Text: text, Err: err}
	}

	return v, nil
}

func parseUint(d Dir, rel string, bits int) (uint64, error) {
	text, err := d.ReadFile(rel)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, &ParseError{Path: filepath.Join(d.path, rel), Text: text, Err: err}
	}

	return v, nil
}

// ParseError reports attribute contents that do not match the expected
// numeric format.
type ParseError struct {
	Err  error
	Path string
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: unexpected contents %q: %v", e.Path, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
