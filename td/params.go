// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package td

// Params are the basic parameters of the TD model.
// See Sutton & Barto, 1990 -- these are fixed for a given experiment.
type Params struct {

	// learning rate
	Alpha float64 `def:"0.1" desc:"learning rate"`

	// associability of the US (reinforcement)
	Beta float64 `def:"1" desc:"associability of the US (reinforcement)"`

	// rate at which stimulus traces move toward the current stimulus intensity
	Delta float64 `def:"0.2" desc:"rate at which stimulus traces move toward the current stimulus intensity"`

	// discount factor applied to the new prediction
	Gamma float64 `def:"0.95" desc:"discount factor applied to the new prediction"`
}

func (tp *Params) Defaults() {
	tp.Alpha = 0.1
	tp.Beta = 1.0
	tp.Delta = 0.2
	tp.Gamma = 0.95
}

// Lrate returns the effective learning rate Alpha * Beta
func (tp *Params) Lrate() float64 {
	return tp.Alpha * tp.Beta
}

// Error returns the Alpha * Beta scaled TD error given the reinforcement,
// the new prediction for the current stimuli, and the previous prediction.
func (tp *Params) Error(rew, newVbar, prvVbar float64) float64 {
	return tp.Lrate() * (rew + tp.Gamma*newVbar - prvVbar)
}

// TraceFmStim moves trace toward stimulus intensity x at rate Delta
func (tp *Params) TraceFmStim(trace *float64, x float64) {
	*trace += tp.Delta * (x - *trace)
}
