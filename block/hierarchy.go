// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/siderolabs/gen/xslices"
)

// ParentDevice returns the whole-disk device a partition belongs to, or
// ok == false for devices that are not partitions (the partition attribute
// is absent or unparsable).
//
// The parent path is derived from the partition number: the decimal digit
// count of the value determines how many trailing characters of the device
// path are the partition suffix. This assumes the kernel naming convention
// where the name ends in the decimal partition number (sda1, sda12); names
// with a separator before the number, like nvme0n1p3, keep the separator in
// the derived path. The offset arithmetic is not validated against the name.
func (d *Device) ParentDevice() (*Device, bool) {
	partition, err := d.Partition()
	if err != nil {
		return nil, false
	}

	path := d.Path()
	pos := len(path) - int(partition)/10 - 1

	return newUnchecked(d.dir.FS(), path[:pos]), true
}

// Children returns the partitions whose ParentDevice is this device, sorted
// ascending by path.
//
// The whole class is rescanned on every call; no index is kept, since the
// backing kernel state can change between calls.
func (d *Device) Children() ([]*Device, error) {
	all, err := All(d.dir.FS())
	if err != nil {
		return nil, err
	}

	children := xslices.Filter(all, func(other *Device) bool {
		parent, ok := other.ParentDevice()

		return ok && parent.Path() == d.Path()
	})

	slices.SortFunc(children, func(a, b *Device) int {
		return strings.Compare(a.Path(), b.Path())
	})

	return children, nil
}

// Slaves returns a single-use iterator over the paths of the devices backing
// a logical device, or ok == false when the device has no slaves directory.
//
// Logical devices list their backing devices under slaves: dm-4 built over
// dm-0 lists dm-0, dm-0 built over sda3 lists sda3, and sda3 itself has no
// slaves directory. The directory is read on first use; a listing failure is
// yielded as a single item with a non-nil error. The iterator cannot be
// restarted after a partial consumption; collect it into a slice first if
// retries are needed.
func (d *Device) Slaves() (iter.Seq2[string, error], bool) {
	if !d.dir.Exists("slaves") {
		return nil, false
	}

	return func(yield func(string, error) bool) {
		names, err := d.dir.List("slaves")
		if err != nil {
			yield("", err)

			return
		}

		slavesPath := filepath.Join(d.Path(), "slaves")

		for _, name := range names {
			if !yield(filepath.Join(slavesPath, name), nil) {
				return
			}
		}
	}, true
}
