// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cond

import (
	"fmt"
	"strings"

	"github.com/emer/tdmodel/td"
	"github.com/goki/ki/kit"
)

// Experiments are the different conditioning experiments
type Experiments int32

//go:generate stringer -type=Experiments

// KiT_Experiments registers the command-line names as alt strings
var KiT_Experiments = kit.Enums.AddEnum(ExperimentsN, kit.NotBitFlag, map[string]any{
	"AltStrings": map[int64]string{int64(TraceCond): "trace", int64(BackwardCond): "backward"},
})

func (ev Experiments) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Experiments) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// TraceCond is trace conditioning: the CS ends before the US arrives,
	// ISI steps after CS onset. Requires ISI >= CS duration.
	TraceCond Experiments = iota

	// BackwardCond is backward conditioning: the US comes first and the CS
	// starts ISI steps after US onset. Requires ISI >= US duration.
	BackwardCond

	ExperimentsN
)

// expDescs are descriptions used in messages
var expDescs = [ExperimentsN]string{TraceCond: "trace conditioning", BackwardCond: "backward conditioning"}

// ShortName returns the command-line name of the experiment
func (ev Experiments) ShortName() string {
	if ev < 0 || ev >= ExperimentsN {
		return ev.String()
	}
	return kit.Enums.EnumIfaceToAltString(ev)
}

// Desc returns a description of the experiment
func (ev Experiments) Desc() string {
	if ev < 0 || ev >= ExperimentsN {
		return ev.String()
	}
	return expDescs[ev]
}

// SetString sets the experiment from its command-line name (trace,
// backward) in any case, or from its exact enum name (TraceCond).
// Anything else returns an error wrapping ErrInvalidConfig.
func (ev *Experiments) SetString(s string) error {
	if err := kit.Enums.SetEnumIfaceFromAltString(ev, strings.ToLower(s)); err == nil {
		return nil
	}
	var ex Experiments
	if err := ex.FromString(s); err == nil && ex < ExperimentsN {
		*ev = ex
		return nil
	}
	nms := make([]string, ExperimentsN)
	for i := range nms {
		nms[i] = Experiments(i).ShortName()
	}
	return fmt.Errorf("%w: unknown experiment %q, must be one of: %s", ErrInvalidConfig, s, strings.Join(nms, ", "))
}

// MinISI returns the smallest ISI for which this experiment can run
// with the given protocol timing.
func (ev Experiments) MinISI(pr *Protocol) int {
	switch ev {
	case TraceCond:
		return pr.CSDur
	case BackwardCond:
		return pr.USDur
	}
	return 0
}

// Blocks returns the sequence of blocks making up one trial of this
// experiment, using given protocol timing. Protocol must be valid.
func (ev Experiments) Blocks(pr *Protocol) []Block {
	cs := Block{Phase: CSPhase, Stims: td.CSBackground, Steps: pr.CSDur}
	us := Block{Phase: USPhase, Stims: td.Background, Rew: pr.USMag, Steps: pr.USDur}
	iti := pr.ITIBlock()
	switch ev {
	case TraceCond:
		trace := Block{Phase: TracePhase, Stims: td.Background, Steps: pr.ISI - pr.CSDur}
		return []Block{cs, trace, us, iti}
	case BackwardCond:
		trace := Block{Phase: TracePhase, Stims: td.Background, Steps: pr.ISI - pr.USDur}
		return []Block{us, trace, cs, iti}
	}
	return nil
}

// Phases are the parts of a trial
type Phases int32

//go:generate stringer -type=Phases

var KiT_Phases = kit.Enums.AddEnum(PhasesN, kit.NotBitFlag, nil)

func (ev Phases) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Phases) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// CSPhase presents the CS with the background
	CSPhase Phases = iota

	// TracePhase is the gap between CS and US where only the background is present
	TracePhase

	// USPhase delivers the reinforcement
	USPhase

	// ITIPhase is the inter-trial interval
	ITIPhase

	PhasesN
)

// Block is a run of time steps with constant stimuli and reinforcement
type Block struct {

	// which part of the trial this is
	Phase Phases `desc:"which part of the trial this is"`

	// stimuli presented on every step
	Stims td.Stims `desc:"stimuli presented on every step"`

	// reinforcement (US) on every step
	Rew float64 `desc:"reinforcement (US) on every step"`

	// number of time steps
	Steps int `desc:"number of time steps"`
}
