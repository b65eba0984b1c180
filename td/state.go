// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package td

// State is the learned and transient state of the TD model.
// V and Trace are aligned index-for-index with the stimulus channels.
// Only Model.Step modifies a State after Init.
type State struct {

	// associative strength for each stimulus
	V []float64 `desc:"associative strength for each stimulus"`

	// eroding trace of recent presence for each stimulus
	Trace []float64 `desc:"eroding trace of recent presence for each stimulus"`

	// prediction computed at the end of the prior step, from updated V and that step's stimuli
	PrvVbar float64 `desc:"prediction computed at the end of the prior step, from updated V and that step's stimuli"`

	// steps since beginning of experiment
	Time int `desc:"steps since beginning of experiment"`
}

// NewState returns a new State for n stimulus channels, initialized to zero.
func NewState(n int) *State {
	st := &State{}
	st.SetN(n)
	return st
}

// SetN allocates V and Trace for n stimulus channels and calls Init.
func (st *State) SetN(n int) {
	if len(st.V) != n {
		st.V = make([]float64, n)
		st.Trace = make([]float64, n)
	}
	st.Init()
}

// N returns the number of stimulus channels
func (st *State) N() int {
	return len(st.V)
}

// Init sets up for a new experiment: zeros strengths, traces,
// previous prediction and time.
func (st *State) Init() {
	st.Time = 0
	st.PrvVbar = 0
	for i := range st.V {
		st.V[i] = 0
		st.Trace[i] = 0
	}
}
