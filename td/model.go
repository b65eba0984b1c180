// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package td

// Model is the TD model of classical conditioning: parameters plus the
// State they are applied to. Each experiment run should own its own Model.
type Model struct {

	// model parameters
	Params Params `view:"inline" desc:"model parameters"`

	// learned and transient state
	State State `desc:"learned and transient state"`

	// Alpha * Beta scaled TD error computed on the last step
	DA float64 `inactive:"+" desc:"Alpha * Beta scaled TD error computed on the last step"`
}

// NewModel returns a new Model with default params and
// state for n stimulus channels.
func NewModel(n int) *Model {
	md := &Model{State: *NewState(n)}
	md.Defaults()
	return md
}

func (md *Model) Defaults() {
	md.Params.Defaults()
}

// Init reinitializes the state for a new experiment.
func (md *Model) Init() {
	md.DA = 0
	md.State.Init()
}

// Vbar returns the current prediction for stimuli x
func (md *Model) Vbar(x []float64) float64 {
	return Vbar(md.State.V, x)
}

// Step runs the model for one time step with stimuli x and reinforcement
// (US) rew. The error uses the prediction for x from the strengths before
// this step, the strength update uses the traces carried in from the
// previous step, and PrvVbar is recomputed from the updated strengths.
func (md *Model) Step(x []float64, rew float64) {
	st := &md.State
	newVbar := Vbar(st.V, x)
	md.DA = md.Params.Error(rew, newVbar, st.PrvVbar)
	st.Time++
	for i := range st.V {
		st.V[i] += md.DA * st.Trace[i]
		md.Params.TraceFmStim(&st.Trace[i], x[i])
	}
	st.PrvVbar = Vbar(st.V, x)
}

// Steps runs the model for nsteps time steps with stimuli x and
// reinforcement rew held fixed. nsteps <= 0 does nothing.
func (md *Model) Steps(nsteps int, x []float64, rew float64) {
	for k := 0; k < nsteps; k++ {
		md.Step(x, rew)
	}
}
