// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package block provides typed access to the block device class of the
// sysfs pseudo-filesystem: attribute readers, the partition/disk hierarchy,
// backing ("slave") device navigation and device technology classification.
//
// The package only observes kernel state, it never writes to sysfs. Devices
// are immutable path handles; every getter reads live state, so values are
// never stale and never cached.
package block

import (
	"github.com/sysfsutils/go-sysclass/sysclass"
)

// ClassName is the sysfs class the devices are enumerated from.
const ClassName = "block"

// SectorSize is the unit of the size and start attributes.
const SectorSize = 512

// Device is a block device directory under <root>/class/block.
type Device struct {
	dir sysclass.Dir
}

var class = sysclass.NewClass(ClassName, func(dir sysclass.Dir) *Device {
	return &Device{dir: dir}
})

// All returns every block device known to the pseudo-filesystem, sorted by
// path.
func All(fsys sysclass.FS) ([]*Device, error) {
	return class.All(fsys)
}

// FromName returns the block device with the given name, e.g. "sda".
//
// The error wraps fs.ErrNotExist when no such device exists.
func FromName(fsys sysclass.FS, name string) (*Device, error) {
	return class.FromName(fsys, name)
}

// newUnchecked wraps a derived path without validating it.
//
// Only navigation code that computed the path from an enumerated instance
// may call this.
func newUnchecked(fsys sysclass.FS, path string) *Device {
	return &Device{dir: sysclass.NewDir(fsys, path)}
}

// Path returns the absolute sysfs directory of the device.
func (d *Device) Path() string {
	return d.dir.Path()
}

// Name returns the device name, e.g. "sda1" or "dm-0".
func (d *Device) Name() string {
	return d.dir.Name()
}

// HasDevice reports whether the block device has an associated physical
// device node (a "device" subdirectory), distinguishing it from purely
// logical devices such as device-mapper or md arrays.
func (d *Device) HasDevice() bool {
	return d.dir.Exists("device")
}
