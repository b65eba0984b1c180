// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package td

import (
	"github.com/goki/ki/kit"
)

// Chans are the stimulus channels of the model, i.e., the indexes
// into State.V, State.Trace and any stimulus vector.
type Chans int32

//go:generate stringer -type=Chans

var KiT_Chans = kit.Enums.AddEnum(ChansN, kit.NotBitFlag, nil)

func (ev Chans) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Chans) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// BgChan is the always-present experimental context (background)
	BgChan Chans = iota

	// CSChan is the conditioned stimulus (e.g., a tone)
	CSChan

	ChansN
)

// chanLabels are the labels used for each channel in logs and reports
var chanLabels = [ChansN]string{BgChan: "background", CSChan: "CS"}

// Label returns the label used for this channel in logs and reports
func (ev Chans) Label() string {
	return chanLabels[ev]
}

// Stims are the named stimulus vectors used in the experiments.
// Make more for other experiments, and add their vector to stimVecs.
type Stims int32

//go:generate stringer -type=Stims

var KiT_Stims = kit.Enums.AddEnum(StimsN, kit.NotBitFlag, nil)

func (ev Stims) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Stims) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Background has only the background channel active
	Background Stims = iota

	// CSBackground has the CS presented together with the background
	CSBackground

	StimsN
)

// stimVecs are the intensities per channel for each of the Stims
var stimVecs = [StimsN][ChansN]float64{
	Background:   {BgChan: 1, CSChan: 0},
	CSBackground: {BgChan: 1, CSChan: 1},
}

// Vector returns a new copy of the stimulus vector for these stimuli,
// with one intensity per Chans channel.
func (ev Stims) Vector() []float64 {
	vec := stimVecs[ev]
	return vec[:]
}

// Intensity returns the intensity of given channel in these stimuli
func (ev Stims) Intensity(ch Chans) float64 {
	return stimVecs[ev][ch]
}
