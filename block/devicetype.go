// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"fmt"
	"strings"

	"github.com/sysfsutils/go-sysclass/scsi"
)

// Kind is the underlying technology of a block device.
type Kind int

// Known device kinds.
const (
	KindUnknown Kind = iota
	KindPartition
	KindDeviceMapper
	KindLoop
	KindMultipleDevice
	KindNVMe
	KindRAMDisk
	KindCompressedRAMDisk
	KindSCSI
	KindStorageDevice
)

func (k Kind) String() string {
	switch k {
	case KindPartition:
		return "partition"
	case KindDeviceMapper:
		return "device-mapper"
	case KindLoop:
		return "loop"
	case KindMultipleDevice:
		return "md"
	case KindNVMe:
		return "nvme"
	case KindRAMDisk:
		return "ram"
	case KindCompressedRAMDisk:
		return "zram"
	case KindSCSI:
		return "scsi"
	case KindStorageDevice:
		return "storage"
	default:
		return "unknown"
	}
}

// DeviceType is the classification of a block device. SCSI devices carry the
// peripheral device type code reported by the kernel.
type DeviceType struct {
	Kind Kind
	SCSI scsi.DeviceType // set when Kind == KindSCSI
}

func (t DeviceType) String() string {
	if t.Kind == KindSCSI {
		return fmt.Sprintf("scsi (%s)", t.SCSI)
	}

	return t.Kind.String()
}

// Type classifies the device from its name and attributes.
//
// The classification is recomputed on every call. Checks run in precedence
// order with the partition check first, so a partition of an NVMe disk
// classifies as a partition, not as an NVMe device. Each name pattern tests
// only the single character following the prefix, matching the kernel naming
// conventions; names sharing a prefix without a digit at that position fall
// through to the next rule.
func (d *Device) Type() DeviceType {
	name := d.Name()

	switch {
	case d.isPartition():
		return DeviceType{Kind: KindPartition}
	case prefixedDigit(name, "dm-"):
		return DeviceType{Kind: KindDeviceMapper}
	case prefixedDigit(name, "loop"):
		return DeviceType{Kind: KindLoop}
	case prefixedDigit(name, "md"):
		return DeviceType{Kind: KindMultipleDevice}
	case prefixedDigit(name, "nvme"):
		return DeviceType{Kind: KindNVMe}
	case prefixedDigit(name, "ram"):
		return DeviceType{Kind: KindRAMDisk}
	case prefixedDigit(name, "zram"):
		return DeviceType{Kind: KindCompressedRAMDisk}
	}

	if text, err := d.dir.ReadFile("device/type"); err == nil {
		if code, err := scsi.ParseDeviceType(text); err == nil {
			return DeviceType{Kind: KindSCSI, SCSI: code}
		}
	}

	if prefixedLetter(name, "sd") {
		return DeviceType{Kind: KindStorageDevice}
	}

	return DeviceType{Kind: KindUnknown}
}

func (d *Device) isPartition() bool {
	_, err := d.Partition()

	return err == nil
}

func prefixedDigit(name, prefix string) bool {
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return false
	}

	c := name[len(prefix)]

	return c >= '0' && c <= '9'
}

func prefixedLetter(name, prefix string) bool {
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return false
	}

	c := name[len(prefix)]

	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
