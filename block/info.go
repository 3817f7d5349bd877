// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"errors"
	"io/fs"

	"github.com/siderolabs/go-pointer"
)

// Info is a point-in-time summary of a device.
//
// Optional attributes are nil when the device does not expose them.
type Info struct { //nolint:govet
	Name string
	Path string
	Type DeviceType

	// Size in bytes (the size attribute counts 512-byte sectors).
	Size uint64

	Model  *string
	Vendor *string
	Serial *string
	State  *string
	WWID   *string

	Rotational *bool
	ReadOnly   *bool
	Removable  *bool

	Scheduler *Scheduler
}

// Describe collects the common attributes of the device into an Info.
//
// Attributes the device does not expose stay nil. Only an unexpected failure
// reading the size attribute is an error; a missing size reads as zero.
func Describe(d *Device) (Info, error) {
	size, err := d.SizeBytes()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Info{}, err
	}

	info := Info{
		Name: d.Name(),
		Path: d.Path(),
		Type: d.Type(),
		Size: size,
	}

	if model, err := d.Model(); err == nil {
		info.Model = pointer.To(model)
	}

	if vendor, err := d.Vendor(); err == nil {
		info.Vendor = pointer.To(vendor)
	}

	if serial, err := d.dir.ReadFile("device/serial"); err == nil {
		info.Serial = pointer.To(serial)
	}

	if state, err := d.State(); err == nil {
		info.State = pointer.To(state)
	}

	if wwid, err := d.WWID(); err == nil {
		info.WWID = pointer.To(wwid)
	}

	if rotational, err := d.QueueRotational(); err == nil {
		info.Rotational = pointer.To(rotational == 1)
	}

	if ro, err := d.RO(); err == nil {
		info.ReadOnly = pointer.To(ro == 1)
	}

	if removable, err := d.Removable(); err == nil {
		info.Removable = pointer.To(removable == 1)
	}

	if sched, err := d.Scheduler(); err == nil {
		info.Scheduler = pointer.To(sched)
	}

	return info, nil
}
