// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package consensushook implements a consensus hook for a fixed block
// processing velocity and unincluded segment capacity. The hook validates the
// number of blocks authored within a relay chain slot against the `V + 1`
// budget and bounds how far the chain of not-yet-included blocks may grow.
package consensushook

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/go-playground/validator/v10"

	"github.com/ChainSafe/parakit/dot/types"
	"github.com/ChainSafe/parakit/internal/log"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "consensushook"),
)

// Weight is the benchmarked execution cost of an operation, in picoseconds
// of reference hardware time.
type Weight uint64

// DefaultDBReadWeight is the cost of one database read, taken from the
// standard RocksDB read weight.
const DefaultDBReadWeight Weight = 25_000_000

// UnincludedSegmentCapacity is the non-zero number of not-yet-included local
// blocks the relay chain currently tolerates beyond an included ancestor.
type UnincludedSegmentCapacity uint32

// RelayChainStateProof is a verified snapshot of relay chain state exposing
// the current relay chain slot.
type RelayChainStateProof interface {
	ReadSlot() (uint64, error)
}

// SlotInfoQuery reads the highest slot info record written by the
// slot-setting inherent. A nil record means no block has been authored yet.
type SlotInfoQuery interface {
	HighestSlotInfo() (*types.SlotInfo, error)
}

// UnincludedSegmentTracker reports the size of the unincluded segment beyond
// the given included block.
type UnincludedSegmentTracker interface {
	SegmentSizeAfter(includedHash common.Hash) uint32
}

// Config holds the velocity hook parameters. They are fixed per deployment
// and never mutated at runtime.
type Config struct {
	// RelaySlotDurationMillis is the relay chain slot duration in
	// milliseconds.
	RelaySlotDurationMillis uint32 `validate:"required"`
	// Velocity is the maximum number of blocks, beyond one, that may be
	// authored per relay chain slot. A value of zero is treated as one.
	Velocity uint32
	// Capacity is the maximum length of the unincluded segment. A value of
	// zero is treated as one.
	Capacity uint32
	// VerifySlotDerivation enables cross-checking the slot recorded by the
	// inherent against the slot derived from the relay chain slot and the
	// two slot durations.
	VerifySlotDerivation bool
	// ParaSlotDurationMillis is the parachain slot duration in milliseconds,
	// only used when VerifySlotDerivation is enabled.
	ParaSlotDurationMillis uint32 `validate:"required_with=VerifySlotDerivation"`
	// DBReadWeight is the cost of one database read, defaulting to
	// DefaultDBReadWeight.
	DBReadWeight Weight
}

// VelocityHook decides whether block production may proceed for a given slot
// and computes the unincluded segment capacity the relay chain currently
// tolerates.
type VelocityHook struct {
	config   Config
	slotInfo SlotInfoQuery
	segment  UnincludedSegmentTracker
}

// NewVelocityHook validates the given configuration and returns a new
// velocity hook reading the highest slot info from slotInfo and unincluded
// segment sizes from segment.
func NewVelocityHook(config Config, slotInfo SlotInfoQuery,
	segment UnincludedSegmentTracker) (*VelocityHook, error) {
	err := validator.New().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if config.DBReadWeight == 0 {
		config.DBReadWeight = DefaultDBReadWeight
	}

	return &VelocityHook{
		config:   config,
		slotInfo: slotInfo,
		segment:  segment,
	}, nil
}

func (h *VelocityHook) velocity() uint32 {
	if h.config.Velocity == 0 {
		return 1
	}
	return h.config.Velocity
}

func (h *VelocityHook) capacity() uint32 {
	if h.config.Capacity == 0 {
		return 1
	}
	return h.config.Capacity
}

// OnStateProof validates the number of blocks authored within the current
// slot against the `velocity + 1` budget. It is called once per block during
// state proof validation and returns the weight consumed together with the
// unincluded segment capacity. Any returned error is fatal: the block being
// processed is consensus-invalid and the host must reject it.
func (h *VelocityHook) OnStateProof(proof RelayChainStateProof) (
	Weight, UnincludedSegmentCapacity, error) {
	relaySlot, err := proof.ReadSlot()
	if err != nil {
		return 0, 0, fmt.Errorf("reading relay chain slot from state proof: %w", err)
	}

	// The slot info is populated by an inherent, so it is absent in the
	// first block; take the default in that case.
	info, err := h.slotInfo.HighestSlotInfo()
	if err != nil {
		return 0, 0, fmt.Errorf("getting highest slot info: %w", err)
	}
	if info == nil {
		info = &types.SlotInfo{}
	}

	// Only cross-check the derived slot when the stored slot is non-zero.
	if h.config.VerifySlotDerivation && info.Slot != 0 {
		relayTimestampMillis := uint64(h.config.RelaySlotDurationMillis) * relaySlot
		paraSlotFromRelay := relayTimestampMillis / uint64(h.config.ParaSlotDurationMillis)
		if info.Slot != paraSlotFromRelay {
			return 0, 0, fmt.Errorf("%w: stored slot is %d but relay slot %d derives to %d",
				ErrSlotDerivationMismatch, info.Slot, relaySlot, paraSlotFromRelay)
		}
	}

	if info.Authored > h.velocity()+1 {
		return 0, 0, fmt.Errorf("%w: authored %d blocks in slot %d with a budget of %d",
			ErrAuthoredBlocksLimit, info.Authored, info.Slot, h.velocity()+1)
	}

	return h.config.DBReadWeight, UnincludedSegmentCapacity(h.capacity()), nil
}

// CanBuildUpon returns whether it is legal to extend the chain, assuming the
// given block is the most recently included one as-of the relay parent that
// will be built against, and the given slot. Block authoring logic calls this
// before producing a candidate, so a collator can avoid wasted work.
//
// When the unincluded segment is empty, i.e. includedHash is the block whose
// state is being queried against, this always returns true as long as the
// slot is more recent than the included block itself.
func (h *VelocityHook) CanBuildUpon(includedHash common.Hash, newSlot uint64) (bool, error) {
	info, err := h.slotInfo.HighestSlotInfo()
	if err != nil {
		return false, fmt.Errorf("getting highest slot info: %w", err)
	}
	if info == nil {
		// Nothing authored yet, nothing constrains the first block.
		return true, nil
	}

	// can never author when the unincluded segment is full.
	sizeAfterIncluded := h.segment.SegmentSizeAfter(includedHash)
	if sizeAfterIncluded >= h.capacity() {
		logger.Debugf("cannot build upon %s: unincluded segment is full (%d >= %d)",
			includedHash, sizeAfterIncluded, h.capacity())
		return false, nil
	}

	if info.Slot == newSlot {
		// The budget here is the raw velocity: with a velocity of zero a
		// collator never re-authors within a slot, even though validation
		// tolerates the clamped budget.
		return info.Authored < h.config.Velocity+1, nil
	}

	// disallow the slot from moving backwards.
	return info.Slot < newSlot, nil
}
