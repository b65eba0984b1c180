// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cond

import (
	"errors"
	"fmt"

	"github.com/emer/tdmodel/td"
)

// ErrInvalidConfig is returned (wrapped) when an experiment cannot be
// run with the requested configuration. Nothing is run in that case.
var ErrInvalidConfig = errors.New("cond: invalid configuration")

// Protocol has the timing of the conditioning trials, in time steps
type Protocol struct {

	// inter-stimulus interval: from CS onset to US onset in trace conditioning, from US onset to CS onset in backward conditioning
	ISI int `desc:"inter-stimulus interval: from CS onset to US onset in trace conditioning, from US onset to CS onset in backward conditioning"`

	// duration of the CS
	CSDur int `def:"4" desc:"duration of the CS"`

	// duration of the US
	USDur int `def:"1" desc:"duration of the US"`

	// magnitude of the US reinforcement
	USMag float64 `def:"1" desc:"magnitude of the US reinforcement"`

	// inter-trial interval, also run once before the first trial
	ITI int `def:"100" desc:"inter-trial interval, also run once before the first trial"`

	// number of trials
	Trials int `def:"20" desc:"number of trials"`
}

func (pr *Protocol) Defaults() {
	pr.CSDur = 4
	pr.USDur = 1
	pr.USMag = 1
	pr.ITI = 100
	pr.Trials = 20
}

// ITIBlock returns the inter-trial interval block
func (pr *Protocol) ITIBlock() Block {
	return Block{Phase: ITIPhase, Stims: td.Background, Steps: pr.ITI}
}

// TrialSteps returns the total number of time steps in one trial of experiment exp
func (pr *Protocol) TrialSteps(exp Experiments) int {
	n := 0
	for _, bl := range exp.Blocks(pr) {
		n += bl.Steps
	}
	return n
}

// Validate checks that the protocol can be run for given experiment,
// returning an error wrapping ErrInvalidConfig if not.
func (pr *Protocol) Validate(exp Experiments) error {
	if exp < 0 || exp >= ExperimentsN {
		return fmt.Errorf("%w: unknown experiment %v", ErrInvalidConfig, exp)
	}
	if pr.CSDur < 1 || pr.USDur < 1 {
		return fmt.Errorf("%w: %s requires CS and US durations >= 1, got CSDur %d, USDur %d", ErrInvalidConfig, exp.Desc(), pr.CSDur, pr.USDur)
	}
	if pr.ITI < 0 {
		return fmt.Errorf("%w: %s requires ITI >= 0, got %d", ErrInvalidConfig, exp.Desc(), pr.ITI)
	}
	if pr.Trials < 1 {
		return fmt.Errorf("%w: %s requires at least 1 trial, got %d", ErrInvalidConfig, exp.Desc(), pr.Trials)
	}
	minISI := exp.MinISI(pr)
	if pr.ISI < minISI {
		what := "CS"
		if exp == BackwardCond {
			what = "US"
		}
		return fmt.Errorf("%w: %s requires ISI >= %s duration %d, got ISI %d", ErrInvalidConfig, exp.Desc(), what, minISI, pr.ISI)
	}
	return nil
}
