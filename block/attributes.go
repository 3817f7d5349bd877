// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sysfsutils/go-sysclass/scsi"
)

// Attribute getters are one-line delegations to the sysclass read helpers.
// Presence of each attribute subtree is device-type dependent: md/* exists
// only for software RAID devices, dm/* only for device-mapper devices, and
// so on. Reading an attribute the device does not expose fails with an error
// wrapping fs.ErrNotExist.

// Base attributes.

// AlignmentOffset returns the alignment_offset attribute.
func (d *Device) AlignmentOffset() (uint64, error) { return d.dir.ParseUint64("alignment_offset") }

// Capability returns the capability attribute.
func (d *Device) Capability() (uint8, error) { return d.dir.ParseUint8("capability") }

// Dev returns the dev attribute, the major:minor device number pair.
func (d *Device) Dev() (string, error) { return d.dir.ReadFile("dev") }

// DiscardAlignment returns the discard_alignment attribute.
func (d *Device) DiscardAlignment() (uint64, error) { return d.dir.ParseUint64("discard_alignment") }

// Events returns the events attribute.
func (d *Device) Events() (string, error) { return d.dir.ReadFile("events") }

// EventsAsync returns the events_async attribute.
func (d *Device) EventsAsync() (string, error) { return d.dir.ReadFile("events_async") }

// EventsPollMsecs returns the events_poll_msecs attribute.
func (d *Device) EventsPollMsecs() (string, error) { return d.dir.ReadFile("events_poll_msecs") }

// ExtRange returns the ext_range attribute.
func (d *Device) ExtRange() (uint64, error) { return d.dir.ParseUint64("ext_range") }

// Hidden returns the hidden attribute.
func (d *Device) Hidden() (uint8, error) { return d.dir.ParseUint8("hidden") }

// Inflight returns the inflight attribute, the in-flight read and write
// request counters.
func (d *Device) Inflight() (string, error) { return d.dir.ReadFile("inflight") }

// Partition returns the partition attribute, the kernel-assigned partition
// number. The attribute exists only for partitions; its absence is the
// signal used by ParentDevice and Type to recognize whole disks.
func (d *Device) Partition() (uint, error) { return d.dir.ParseUint("partition") }

// Range returns the range attribute.
func (d *Device) Range() (uint64, error) { return d.dir.ParseUint64("range") }

// Removable returns the removable attribute.
func (d *Device) Removable() (uint8, error) { return d.dir.ParseUint8("removable") }

// RO returns the ro attribute, 1 when the kernel marked the device read-only.
func (d *Device) RO() (uint8, error) { return d.dir.ParseUint8("ro") }

// Size returns the size attribute, counted in 512-byte sectors regardless of
// the device block size.
func (d *Device) Size() (uint64, error) { return d.dir.ParseUint64("size") }

// SizeBytes returns the device size in bytes.
func (d *Device) SizeBytes() (uint64, error) {
	size, err := d.Size()

	return size * SectorSize, err
}

// Start returns the start attribute, the partition offset in sectors.
func (d *Device) Start() (uint64, error) { return d.dir.ParseUint64("start") }

// Stat returns the stat attribute, the raw I/O statistics line.
func (d *Device) Stat() (string, error) { return d.dir.ReadFile("stat") }

// UEvent returns the uevent attribute.
func (d *Device) UEvent() (string, error) { return d.dir.ReadFile("uevent") }

// device attributes, present when the block device has an associated
// physical device node.

// DeviceBlocked returns the device/device_blocked attribute.
func (d *Device) DeviceBlocked() (uint8, error) { return d.dir.ParseUint8("device/device_blocked") }

// DeviceBusy returns the device/device_busy attribute.
func (d *Device) DeviceBusy() (uint8, error) { return d.dir.ParseUint8("device/device_busy") }

// Model returns the device/model attribute.
func (d *Device) Model() (string, error) { return d.dir.ReadFile("device/model") }

// QueueDepth returns the device/queue_depth attribute.
func (d *Device) QueueDepth() (uint64, error) { return d.dir.ParseUint64("device/queue_depth") }

// Rev returns the device/rev attribute.
func (d *Device) Rev() (string, error) { return d.dir.ReadFile("device/rev") }

// SCSIType returns the device/type attribute as a SCSI peripheral device
// type code.
func (d *Device) SCSIType() (scsi.DeviceType, error) {
	text, err := d.dir.ReadFile("device/type")
	if err != nil {
		return 0, err
	}

	return scsi.ParseDeviceType(text)
}

// State returns the device/state attribute.
func (d *Device) State() (string, error) { return d.dir.ReadFile("device/state") }

// Timeout returns the device/timeout attribute.
func (d *Device) Timeout() (uint64, error) { return d.dir.ParseUint64("device/timeout") }

// Vendor returns the device/vendor attribute.
func (d *Device) Vendor() (string, error) { return d.dir.ReadFile("device/vendor") }

// WWID returns the device/wwid attribute.
func (d *Device) WWID() (string, error) { return d.dir.ReadFile("device/wwid") }

// dm attributes, present for device-mapper devices.

// DMName returns the dm/name attribute.
func (d *Device) DMName() (string, error) { return d.dir.ReadFile("dm/name") }

// DMSuspended returns the dm/suspended attribute.
func (d *Device) DMSuspended() (uint8, error) { return d.dir.ParseUint8("dm/suspended") }

// DMUUID returns the dm/uuid attribute, e.g. "LVM-<vg uuid><lv uuid>".
func (d *Device) DMUUID() (string, error) { return d.dir.ReadFile("dm/uuid") }

// md attributes, present for software RAID devices.

// MDArraySize returns the md/array_size attribute.
func (d *Device) MDArraySize() (string, error) { return d.dir.ReadFile("md/array_size") }

// MDArrayState returns the md/array_state attribute.
func (d *Device) MDArrayState() (string, error) { return d.dir.ReadFile("md/array_state") }

// MDChunkSize returns the md/chunk_size attribute.
func (d *Device) MDChunkSize() (uint64, error) { return d.dir.ParseUint64("md/chunk_size") }

// MDComponentSize returns the md/component_size attribute.
func (d *Device) MDComponentSize() (uint64, error) { return d.dir.ParseUint64("md/component_size") }

// MDDegraded returns the md/degraded attribute.
func (d *Device) MDDegraded() (uint8, error) { return d.dir.ParseUint8("md/degraded") }

// MDLayout returns the md/layout attribute.
func (d *Device) MDLayout() (uint64, error) { return d.dir.ParseUint64("md/layout") }

// MDLevel returns the md/level attribute, e.g. "raid1".
func (d *Device) MDLevel() (string, error) { return d.dir.ReadFile("md/level") }

// MDMetadataVersion returns the md/metadata_version attribute.
func (d *Device) MDMetadataVersion() (string, error) { return d.dir.ReadFile("md/metadata_version") }

// MDMismatchCount returns the md/mismatch_cnt attribute.
func (d *Device) MDMismatchCount() (uint64, error) { return d.dir.ParseUint64("md/mismatch_cnt") }

// MDPrereadBypassThreshold returns the md/preread_bypass_threshold attribute.
func (d *Device) MDPrereadBypassThreshold() (uint64, error) {
	return d.dir.ParseUint64("md/preread_bypass_threshold")
}

// MDRaidDisks returns the md/raid_disks attribute.
func (d *Device) MDRaidDisks() (uint64, error) { return d.dir.ParseUint64("md/raid_disks") }

// MDReshapePosition returns the md/reshape_position attribute.
func (d *Device) MDReshapePosition() (string, error) { return d.dir.ReadFile("md/reshape_position") }

// MDResyncStart returns the md/resync_start attribute.
func (d *Device) MDResyncStart() (string, error) { return d.dir.ReadFile("md/resync_start") }

// MDSafeModeDelay returns the md/safe_mode_delay attribute.
func (d *Device) MDSafeModeDelay() (float64, error) { return d.dir.ParseFloat64("md/safe_mode_delay") }

// MDStripeCacheActive returns the md/stripe_cache_active attribute.
func (d *Device) MDStripeCacheActive() (uint8, error) {
	return d.dir.ParseUint8("md/stripe_cache_active")
}

// MDStripeCacheSize returns the md/stripe_cache_size attribute.
func (d *Device) MDStripeCacheSize() (uint64, error) {
	return d.dir.ParseUint64("md/stripe_cache_size")
}

// MDSuspendHi returns the md/suspend_hi attribute.
func (d *Device) MDSuspendHi() (uint64, error) { return d.dir.ParseUint64("md/suspend_hi") }

// MDSuspendLo returns the md/suspend_lo attribute.
func (d *Device) MDSuspendLo() (uint64, error) { return d.dir.ParseUint64("md/suspend_lo") }

// MDSyncAction returns the md/sync_action attribute.
func (d *Device) MDSyncAction() (string, error) { return d.dir.ReadFile("md/sync_action") }

// MDSyncCompleted returns the md/sync_completed attribute.
func (d *Device) MDSyncCompleted() (string, error) { return d.dir.ReadFile("md/sync_completed") }

// MDSyncForceParallel returns the md/sync_force_parallel attribute.
func (d *Device) MDSyncForceParallel() (uint8, error) {
	return d.dir.ParseUint8("md/sync_force_parallel")
}

// MDSyncMax returns the md/sync_max attribute.
func (d *Device) MDSyncMax() (string, error) { return d.dir.ReadFile("md/sync_max") }

// MDSyncMin returns the md/sync_min attribute.
func (d *Device) MDSyncMin() (uint64, error) { return d.dir.ParseUint64("md/sync_min") }

// MDSyncSpeed returns the md/sync_speed attribute.
func (d *Device) MDSyncSpeed() (string, error) { return d.dir.ReadFile("md/sync_speed") }

// MDSyncSpeedMax returns the md/sync_speed_max attribute.
func (d *Device) MDSyncSpeedMax() (string, error) { return d.dir.ReadFile("md/sync_speed_max") }

// MDSyncSpeedMin returns the md/sync_speed_min attribute.
func (d *Device) MDSyncSpeedMin() (string, error) { return d.dir.ReadFile("md/sync_speed_min") }

// MDUUID returns the md/uuid attribute, the RAID array UUID. The kernel
// stores it as four colon-separated hex words.
func (d *Device) MDUUID() (uuid.UUID, error) {
	text, err := d.dir.ReadFile("md/uuid")
	if err != nil {
		return uuid.UUID{}, err
	}

	return uuid.Parse(strings.ReplaceAll(text, ":", ""))
}

// queue attributes.

// QueueAddRandom returns the queue/add_random attribute.
func (d *Device) QueueAddRandom() (uint64, error) { return d.dir.ParseUint64("queue/add_random") }

// QueueChunkSectors returns the queue/chunk_sectors attribute.
func (d *Device) QueueChunkSectors() (uint64, error) {
	return d.dir.ParseUint64("queue/chunk_sectors")
}

// QueueDAX returns the queue/dax attribute.
func (d *Device) QueueDAX() (uint64, error) { return d.dir.ParseUint64("queue/dax") }

// QueueDiscardGranularity returns the queue/discard_granularity attribute.
func (d *Device) QueueDiscardGranularity() (uint64, error) {
	return d.dir.ParseUint64("queue/discard_granularity")
}

// QueueDiscardMaxBytes returns the queue/discard_max_bytes attribute.
func (d *Device) QueueDiscardMaxBytes() (uint64, error) {
	return d.dir.ParseUint64("queue/discard_max_bytes")
}

// QueueDiscardMaxHWBytes returns the queue/discard_max_hw_bytes attribute.
func (d *Device) QueueDiscardMaxHWBytes() (uint64, error) {
	return d.dir.ParseUint64("queue/discard_max_hw_bytes")
}

// QueueDiscardZeroesData returns the queue/discard_zeroes_data attribute.
func (d *Device) QueueDiscardZeroesData() (uint64, error) {
	return d.dir.ParseUint64("queue/discard_zeroes_data")
}

// QueueFUA returns the queue/fua attribute.
func (d *Device) QueueFUA() (uint64, error) { return d.dir.ParseUint64("queue/fua") }

// QueueHWSectorSize returns the queue/hw_sector_size attribute.
func (d *Device) QueueHWSectorSize() (uint64, error) {
	return d.dir.ParseUint64("queue/hw_sector_size")
}

// QueueIOPoll returns the queue/io_poll attribute.
func (d *Device) QueueIOPoll() (uint64, error) { return d.dir.ParseUint64("queue/io_poll") }

// QueueIOPollDelay returns the queue/io_poll_delay attribute.
func (d *Device) QueueIOPollDelay() (string, error) { return d.dir.ReadFile("queue/io_poll_delay") }

// QueueIOStats returns the queue/iostats attribute.
func (d *Device) QueueIOStats() (uint64, error) { return d.dir.ParseUint64("queue/iostats") }

// QueueLogicalBlockSize returns the queue/logical_block_size attribute.
func (d *Device) QueueLogicalBlockSize() (uint64, error) {
	return d.dir.ParseUint64("queue/logical_block_size")
}

// QueueMaxDiscardSegments returns the queue/max_discard_segments attribute.
func (d *Device) QueueMaxDiscardSegments() (uint64, error) {
	return d.dir.ParseUint64("queue/max_discard_segments")
}

// QueueMaxHWSectorsKB returns the queue/max_hw_sectors_kb attribute.
func (d *Device) QueueMaxHWSectorsKB() (uint64, error) {
	return d.dir.ParseUint64("queue/max_hw_sectors_kb")
}

// QueueMaxIntegritySegments returns the queue/max_integrity_segments attribute.
func (d *Device) QueueMaxIntegritySegments() (uint64, error) {
	return d.dir.ParseUint64("queue/max_integrity_segments")
}

// QueueMaxSectorsKB returns the queue/max_sectors_kb attribute.
func (d *Device) QueueMaxSectorsKB() (uint64, error) {
	return d.dir.ParseUint64("queue/max_sectors_kb")
}

// QueueMaxSegmentSize returns the queue/max_segment_size attribute.
func (d *Device) QueueMaxSegmentSize() (uint64, error) {
	return d.dir.ParseUint64("queue/max_segment_size")
}

// QueueMaxSegments returns the queue/max_segments attribute.
func (d *Device) QueueMaxSegments() (uint64, error) {
	return d.dir.ParseUint64("queue/max_segments")
}

// QueueMinimumIOSize returns the queue/minimum_io_size attribute.
func (d *Device) QueueMinimumIOSize() (uint64, error) {
	return d.dir.ParseUint64("queue/minimum_io_size")
}

// QueueNoMerges returns the queue/nomerges attribute.
func (d *Device) QueueNoMerges() (uint64, error) { return d.dir.ParseUint64("queue/nomerges") }

// QueueNRRequests returns the queue/nr_requests attribute.
func (d *Device) QueueNRRequests() (uint64, error) { return d.dir.ParseUint64("queue/nr_requests") }

// QueueOptimalIOSize returns the queue/optimal_io_size attribute.
func (d *Device) QueueOptimalIOSize() (uint64, error) {
	return d.dir.ParseUint64("queue/optimal_io_size")
}

// QueuePhysicalBlockSize returns the queue/physical_block_size attribute.
func (d *Device) QueuePhysicalBlockSize() (uint64, error) {
	return d.dir.ParseUint64("queue/physical_block_size")
}

// QueueReadAheadKB returns the queue/read_ahead_kb attribute.
func (d *Device) QueueReadAheadKB() (uint64, error) {
	return d.dir.ParseUint64("queue/read_ahead_kb")
}

// QueueRotational returns the queue/rotational attribute, 1 for spinning
// media.
func (d *Device) QueueRotational() (uint8, error) { return d.dir.ParseUint8("queue/rotational") }

// QueueRQAffinity returns the queue/rq_affinity attribute.
func (d *Device) QueueRQAffinity() (uint64, error) { return d.dir.ParseUint64("queue/rq_affinity") }

// QueueWriteCache returns the queue/write_cache attribute.
func (d *Device) QueueWriteCache() (string, error) { return d.dir.ReadFile("queue/write_cache") }

// QueueWriteSameMaxBytes returns the queue/write_same_max_bytes attribute.
func (d *Device) QueueWriteSameMaxBytes() (uint64, error) {
	return d.dir.ParseUint64("queue/write_same_max_bytes")
}

// QueueWriteZeroesMaxBytes returns the queue/write_zeroes_max_bytes attribute.
func (d *Device) QueueWriteZeroesMaxBytes() (uint64, error) {
	return d.dir.ParseUint64("queue/write_zeroes_max_bytes")
}

// QueueZoned returns the queue/zoned attribute.
func (d *Device) QueueZoned() (string, error) { return d.dir.ReadFile("queue/zoned") }

// queue/iosched attributes, dependent on the active scheduler.

// IOSchedBackSeekMax returns the queue/iosched/back_seek_max attribute.
func (d *Device) IOSchedBackSeekMax() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/back_seek_max")
}

// IOSchedBackSeekPenalty returns the queue/iosched/back_seek_penalty attribute.
func (d *Device) IOSchedBackSeekPenalty() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/back_seek_penalty")
}

// IOSchedFifoExpireAsync returns the queue/iosched/fifo_expire_async attribute.
func (d *Device) IOSchedFifoExpireAsync() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/fifo_expire_async")
}

// IOSchedFifoExpireSync returns the queue/iosched/fifo_expire_sync attribute.
func (d *Device) IOSchedFifoExpireSync() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/fifo_expire_sync")
}

// IOSchedGroupIdle returns the queue/iosched/group_idle attribute.
func (d *Device) IOSchedGroupIdle() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/group_idle")
}

// IOSchedGroupIdleUS returns the queue/iosched/group_idle_us attribute.
func (d *Device) IOSchedGroupIdleUS() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/group_idle_us")
}

// IOSchedLowLatency returns the queue/iosched/low_latency attribute.
func (d *Device) IOSchedLowLatency() (uint8, error) {
	return d.dir.ParseUint8("queue/iosched/low_latency")
}

// IOSchedQuantum returns the queue/iosched/quantum attribute.
func (d *Device) IOSchedQuantum() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/quantum")
}

// IOSchedSliceAsync returns the queue/iosched/slice_async attribute.
func (d *Device) IOSchedSliceAsync() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/slice_async")
}

// IOSchedSliceAsyncRQ returns the queue/iosched/slice_async_rq attribute.
func (d *Device) IOSchedSliceAsyncRQ() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/slice_async_rq")
}

// IOSchedSliceAsyncUS returns the queue/iosched/slice_async_us attribute.
func (d *Device) IOSchedSliceAsyncUS() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/slice_async_us")
}

// IOSchedSliceIdle returns the queue/iosched/slice_idle attribute.
func (d *Device) IOSchedSliceIdle() (uint8, error) {
	return d.dir.ParseUint8("queue/iosched/slice_idle")
}

// IOSchedSliceIdleUS returns the queue/iosched/slice_idle_us attribute.
func (d *Device) IOSchedSliceIdleUS() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/slice_idle_us")
}

// IOSchedSliceSync returns the queue/iosched/slice_sync attribute.
func (d *Device) IOSchedSliceSync() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/slice_sync")
}

// IOSchedSliceSyncUS returns the queue/iosched/slice_sync_us attribute.
func (d *Device) IOSchedSliceSyncUS() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/slice_sync_us")
}

// IOSchedTargetLatency returns the queue/iosched/target_latency attribute.
func (d *Device) IOSchedTargetLatency() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/target_latency")
}

// IOSchedTargetLatencyUS returns the queue/iosched/target_latency_us attribute.
func (d *Device) IOSchedTargetLatencyUS() (uint64, error) {
	return d.dir.ParseUint64("queue/iosched/target_latency_us")
}
