// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/sysfsutils/go-sysclass/sysclass"
)

// FromDevNode resolves a /dev block device node to its sysfs class entry
// via the device number symlink under <root>/dev/block.
func FromDevNode(fsys sysclass.FS, devPath string) (*Device, error) {
	var st unix.Stat_t

	if err := unix.Stat(devPath, &st); err != nil {
		return nil, fmt.Errorf("stat %s: %w", devPath, err)
	}

	if st.Mode&unix.S_IFMT != unix.S_IFBLK {
		return nil, fmt.Errorf("%s is not a block device node", devPath)
	}

	link := filepath.Join(fsys.Root(), "dev", "block",
		fmt.Sprintf("%d:%d", unix.Major(st.Rdev), unix.Minor(st.Rdev)))

	target, err := os.Readlink(link)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", link, err)
	}

	return FromName(fsys, filepath.Base(target))
}
