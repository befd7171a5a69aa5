// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/ChainSafe/parakit/dot/types"
)

const slotTablePrefix = "slot"

var highestSlotInfoKey = []byte("highest_slot_info")

// ErrSlotMovedBackwards is returned when recording an authored block for a
// slot lower than the highest slot already recorded.
var ErrSlotMovedBackwards = errors.New("slot moved backwards")

// SlotState tracks the highest relay chain slot this chain has authored in,
// along with the number of blocks authored within that slot. It is written by
// the slot-setting inherent at the start of each block and read by the
// consensus hook when validating state proofs.
type SlotState struct {
	db chaindb.Database
}

// NewSlotState returns a SlotState backed by a prefixed table of the given
// database.
func NewSlotState(db chaindb.Database) *SlotState {
	return &SlotState{
		db: chaindb.NewTable(db, slotTablePrefix),
	}
}

// HighestSlotInfo returns the highest slot info record, or nil if no block
// has been authored yet (the record is only written from the first authored
// block onwards).
func (s *SlotState) HighestSlotInfo() (*types.SlotInfo, error) {
	enc, err := s.db.Get(highestSlotInfoKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("getting highest slot info: %w", err)
	}

	info := new(types.SlotInfo)
	err = scale.Unmarshal(enc, info)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling highest slot info: %w", err)
	}

	return info, nil
}

// RecordAuthoredBlock updates the highest slot info for a block authored at
// the given slot. Moving to a higher slot resets the authored counter to one,
// authoring again within the recorded slot increments it, and a lower slot is
// rejected since slots are monotonically non-decreasing.
func (s *SlotState) RecordAuthoredBlock(slot uint64) error {
	info, err := s.HighestSlotInfo()
	if err != nil {
		return err
	}

	switch {
	case info == nil || slot > info.Slot:
		info = &types.SlotInfo{Slot: slot, Authored: 1}
	case slot == info.Slot:
		info.Authored++
	default:
		return fmt.Errorf("%w: highest slot is %d but got slot %d",
			ErrSlotMovedBackwards, info.Slot, slot)
	}

	return s.storeHighestSlotInfo(*info)
}

func (s *SlotState) storeHighestSlotInfo(info types.SlotInfo) error {
	enc, err := scale.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshalling highest slot info: %w", err)
	}

	err = s.db.Put(highestSlotInfoKey, enc)
	if err != nil {
		return fmt.Errorf("putting highest slot info: %w", err)
	}

	return nil
}
