// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package scsi provides the SCSI peripheral device type codes the kernel
// exposes through the device/type sysfs attribute.
package scsi

import (
	"fmt"
	"strconv"
)

// DeviceType is a SCSI peripheral device type code.
//
// Every byte value is a valid DeviceType; the named constants cover the
// standard assignments, every other value (vendor specific and reserved
// codes included) reports Known() == false. Conversion to and from the raw
// byte is a plain cast and is lossless.
type DeviceType uint8

// Peripheral device type codes per the SCSI Primary Commands standard.
const (
	TypeDisk                     DeviceType = 0x00
	TypeTape                     DeviceType = 0x01
	TypePrinter                  DeviceType = 0x02
	TypeProcessor                DeviceType = 0x03
	TypeWORM                     DeviceType = 0x04
	TypeCDDVD                    DeviceType = 0x05
	TypeScanner                  DeviceType = 0x06
	TypeOpticalMemory            DeviceType = 0x07
	TypeMediumChanger            DeviceType = 0x08
	TypeCommunications           DeviceType = 0x09
	TypeStorageArray             DeviceType = 0x0c
	TypeEnclosure                DeviceType = 0x0d
	TypeSimplifiedDisk           DeviceType = 0x0e
	TypeOpticalCardReader        DeviceType = 0x0f
	TypeBridgeController         DeviceType = 0x10
	TypeObjectStorage            DeviceType = 0x11
	TypeAutomationDriveInterface DeviceType = 0x12
)

// ParseDeviceType parses the decimal text representation of the code, as
// stored in the device/type attribute.
func ParseDeviceType(text string) (DeviceType, error) {
	v, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parsing SCSI device type: %w", err)
	}

	return DeviceType(v), nil
}

// Known reports whether the code has a standard assignment.
func (t DeviceType) Known() bool {
	switch t {
	case TypeDisk, TypeTape, TypePrinter, TypeProcessor, TypeWORM, TypeCDDVD,
		TypeScanner, TypeOpticalMemory, TypeMediumChanger, TypeCommunications,
		TypeStorageArray, TypeEnclosure, TypeSimplifiedDisk, TypeOpticalCardReader,
		TypeBridgeController, TypeObjectStorage, TypeAutomationDriveInterface:
		return true
	default:
		return false
	}
}

func (t DeviceType) String() string {
	switch t {
	case TypeDisk:
		return "disk"
	case TypeTape:
		return "tape"
	case TypePrinter:
		return "printer"
	case TypeProcessor:
		return "processor"
	case TypeWORM:
		return "worm"
	case TypeCDDVD:
		return "cd/dvd"
	case TypeScanner:
		return "scanner"
	case TypeOpticalMemory:
		return "optical memory"
	case TypeMediumChanger:
		return "medium changer"
	case TypeCommunications:
		return "communications"
	case TypeStorageArray:
		return "storage array"
	case TypeEnclosure:
		return "enclosure"
	case TypeSimplifiedDisk:
		return "simplified disk"
	case TypeOpticalCardReader:
		return "optical card reader"
	case TypeBridgeController:
		return "bridge controller"
	case TypeObjectStorage:
		return "object storage"
	case TypeAutomationDriveInterface:
		return "automation/drive interface"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(t))
	}
}
