// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freddierice/go-losetup/v2"
	"github.com/siderolabs/go-cmd/pkg/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysfsutils/go-sysclass/block"
	"github.com/sysfsutils/go-sysclass/sysclass"
)

const (
	MiB = 1024 * 1024
	GiB = 1024 * MiB
)

func TestLoopDevice(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("skipping test; must be root")
	}

	tmpDir := t.TempDir()

	rawImage := filepath.Join(tmpDir, "image.raw")

	f, err := os.Create(rawImage)
	require.NoError(t, err)

	require.NoError(t, f.Truncate(int64(1*GiB)))
	require.NoError(t, f.Close())

	loDev, err := losetup.Attach(rawImage, 0, false)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, loDev.Detach())
	})

	fsys := sysclass.Default()

	dev, err := block.FromDevNode(fsys, loDev.Path())
	require.NoError(t, err)

	loopName := filepath.Base(loDev.Path())
	assert.Equal(t, loopName, dev.Name())

	t.Run("classification", func(t *testing.T) {
		assert.Equal(t, block.KindLoop, dev.Type().Kind)
		assert.False(t, dev.HasDevice())
	})

	t.Run("size", func(t *testing.T) {
		size, err := dev.SizeBytes()
		require.NoError(t, err)

		assert.EqualValues(t, 1*GiB, size)
	})

	t.Run("scheduler", func(t *testing.T) {
		sched, err := dev.Scheduler()
		require.NoError(t, err)

		assert.NotEmpty(t, sched.Names)
		assert.NotEmpty(t, sched.ActiveName())
	})

	t.Run("enumeration", func(t *testing.T) {
		devices, err := block.All(fsys)
		require.NoError(t, err)

		assert.Contains(t, names(devices), loopName)
	})

	t.Run("partitions", func(t *testing.T) {
		if hostname, _ := os.Hostname(); hostname == "buildkitsandbox" { //nolint:errcheck
			t.Skip("test not supported under buildkit as partition devices are not propagated from /dev")
		}

		script := strings.TrimSpace(`
		label: gpt
		size=100MiB, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4, name="DATA1"
		            type=0FC63DAF-8483-4772-8E79-3D69D8477DE4, name="DATA2"
		`)

		_, err := cmd.RunContext(cmd.WithStdin(context.Background(), strings.NewReader(script)),
			"sfdisk", loDev.Path())
		require.NoError(t, err)

		_, err = cmd.Run("partprobe", loDev.Path())
		require.NoError(t, err)

		part, err := block.FromName(fsys, loopName+"p1")
		require.NoError(t, err)

		partNo, err := part.Partition()
		require.NoError(t, err)
		assert.EqualValues(t, 1, partNo)

		assert.Equal(t, block.KindPartition, part.Type().Kind)

		start, err := part.Start()
		require.NoError(t, err)
		assert.NotZero(t, start)

		_, ok := part.ParentDevice()
		assert.True(t, ok)
	})
}
