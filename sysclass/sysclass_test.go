// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sysclass_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysfsutils/go-sysclass/sysclass"
)

// writeTree creates a fixture pseudo-filesystem under a temporary root.
// Keys ending in "/" create empty directories, other keys create files.
func writeTree(t *testing.T, entries map[string]string) sysclass.FS {
	t.Helper()

	root := t.TempDir()

	for name, contents := range entries {
		path := filepath.Join(root, name)

		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))

			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}

	return sysclass.DirFS(root)
}

var testClass = sysclass.NewClass("widget", func(dir sysclass.Dir) sysclass.Dir {
	return dir
})

func TestClassAll(t *testing.T) {
	fsys := writeTree(t, map[string]string{
		"class/widget/beta/":  "",
		"class/widget/alpha/": "",
		"class/widget/gamma/": "",
	})

	instances, err := testClass.All(fsys)
	require.NoError(t, err)

	names := make([]string, 0, len(instances))
	for _, instance := range instances {
		names = append(names, instance.Name())
	}

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestClassAllMissingRoot(t *testing.T) {
	fsys := sysclass.DirFS(t.TempDir())

	_, err := testClass.All(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestClassFromName(t *testing.T) {
	fsys := writeTree(t, map[string]string{
		"class/widget/alpha/": "",
	})

	instance, err := testClass.FromName(fsys, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", instance.Name())
	assert.Equal(t, filepath.Join(fsys.Root(), "class", "widget", "alpha"), instance.Path())

	_, err = testClass.FromName(fsys, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirReadFile(t *testing.T) {
	fsys := writeTree(t, map[string]string{
		"class/widget/alpha/label":       "hello world\n",
		"class/widget/alpha/sub/trimmed": "value \t\n",
	})

	instance, err := testClass.FromName(fsys, "alpha")
	require.NoError(t, err)

	label, err := instance.ReadFile("label")
	require.NoError(t, err)
	assert.Equal(t, "hello world", label)

	trimmed, err := instance.ReadFile("sub/trimmed")
	require.NoError(t, err)
	assert.Equal(t, "value", trimmed)

	_, err = instance.ReadFile("absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirParse(t *testing.T) {
	fsys := writeTree(t, map[string]string{
		"class/widget/alpha/count": "123\n",
		"class/widget/alpha/tiny":  "7\n",
		"class/widget/alpha/delay": "0.203\n",
		"class/widget/alpha/junk":  "not a number\n",
		"class/widget/alpha/wide":  "256\n",
	})

	instance, err := testClass.FromName(fsys, "alpha")
	require.NoError(t, err)

	count, err := instance.ParseUint64("count")
	require.NoError(t, err)
	assert.EqualValues(t, 123, count)

	tiny, err := instance.ParseUint8("tiny")
	require.NoError(t, err)
	assert.EqualValues(t, 7, tiny)

	delay, err := instance.ParseFloat64("delay")
	require.NoError(t, err)
	assert.InDelta(t, 0.203, delay, 0.0001)

	_, err = instance.ParseUint64("junk")
	require.Error(t, err)

	var parseErr *sysclass.ParseError

	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "not a number", parseErr.Text)

	// out of range for a byte is a parse failure, not a truncation
	_, err = instance.ParseUint8("wide")
	require.Error(t, err)
	assert.ErrorAs(t, err, &parseErr)

	// missing attribute surfaces the I/O error kind, not a parse error
	_, err = instance.ParseUint64("absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.As(err, &parseErr))
}

func TestDirPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("skipping test; root bypasses file permissions")
	}

	fsys := writeTree(t, map[string]string{
		"class/widget/alpha/secret": "42\n",
	})

	instance, err := testClass.FromName(fsys, "alpha")
	require.NoError(t, err)

	require.NoError(t, os.Chmod(filepath.Join(instance.Path(), "secret"), 0o000))

	_, err = instance.ReadFile("secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestNewDir(t *testing.T) {
	fsys := sysclass.DirFS(t.TempDir())

	dir := sysclass.NewDir(fsys, "/sys/class/block/sda")
	assert.Equal(t, "/sys/class/block/sda", dir.Path())
	assert.Equal(t, "sda", dir.Name())
}
