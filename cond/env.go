// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cond

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etable"
	"github.com/emer/tdmodel/td"
)

// Env runs one conditioning experiment on its own td.Model,
// recording the model state at the end of each trial in TrialLog
// (and after every step in StepLog, if that is non-nil).
type Env struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// description of this environment
	Dsc string `desc:"description of this environment"`

	// which experiment to run
	Exp Experiments `desc:"which experiment to run"`

	// trial timing
	Protocol Protocol `view:"inline" desc:"trial timing"`

	// the TD model trained by this environment
	Model td.Model `desc:"the TD model trained by this environment"`

	// current trial: -1 during the initial inter-trial interval
	Trial env.Ctr `view:"inline" desc:"current trial: -1 during the initial inter-trial interval"`

	// time step within the current trial
	Event env.Ctr `view:"inline" desc:"time step within the current trial"`

	// current block within the trial
	Block Block `inactive:"+" desc:"current block within the trial"`

	// model state at the end of each trial
	TrialLog *etable.Table `view:"no-inline" desc:"model state at the end of each trial"`

	// if non-nil, model state after every time step
	StepLog *etable.Table `view:"no-inline" desc:"if non-nil, model state after every time step"`

	// called at the end of each trial, after TrialLog is updated
	TrialFunc func(ev *Env) `view:"-" desc:"called at the end of each trial, after TrialLog is updated"`
}

func (ev *Env) Name() string { return ev.Nm }
func (ev *Env) Desc() string { return ev.Dsc }

// NewEnv returns a new Env configured for experiment exp with given ISI,
// using default Protocol timing otherwise.
func NewEnv(exp Experiments, isi int) *Env {
	ev := &Env{}
	ev.Config(exp, isi)
	return ev
}

// Config configures the env for experiment exp with given ISI,
// setting default Protocol timing and model parameters.
func (ev *Env) Config(exp Experiments, isi int) {
	ev.Exp = exp
	ev.Protocol.Defaults()
	ev.Protocol.ISI = isi
	ev.Nm = fmt.Sprintf("%s_ISI%d", exp.ShortName(), isi)
	ev.Dsc = exp.Desc()
	ev.Model.Defaults()
	ev.Model.State.SetN(int(td.ChansN))
	if ev.TrialLog == nil {
		ev.TrialLog = &etable.Table{}
	}
	ConfigTrialLog(ev.TrialLog)
}

// ConfigStepLog turns on logging of every time step into StepLog
func (ev *Env) ConfigStepLog() {
	if ev.StepLog == nil {
		ev.StepLog = &etable.Table{}
	}
	ConfigStepLog(ev.StepLog)
}

// Validate returns an error wrapping ErrInvalidConfig if the
// experiment cannot be run with the current Protocol.
func (ev *Env) Validate() error {
	if err := ev.Protocol.Validate(ev.Exp); err != nil {
		return err
	}
	if ev.Model.State.N() != int(td.ChansN) {
		return fmt.Errorf("%w: model has %d stimulus channels, need %d -- call Config", ErrInvalidConfig, ev.Model.State.N(), td.ChansN)
	}
	return nil
}

// String returns the current state as a string
func (ev *Env) String() string {
	return fmt.Sprintf("%s_%d_%d_%s", ev.Nm, ev.Trial.Cur, ev.Event.Cur, ev.Block.Phase)
}

// Init sets up for a new run of the experiment: reinitializes the model
// state, counters and logs.
func (ev *Env) Init() {
	ev.Model.Init()
	ev.Trial.Init()
	ev.Trial.Max = ev.Protocol.Trials
	ev.Trial.Cur = -1 // init state -- first trial sets to 0
	ev.Event.Init()
	ev.Block = Block{}
	if ev.TrialLog != nil {
		ev.TrialLog.SetNumRows(0)
	}
	if ev.StepLog != nil {
		ev.StepLog.SetNumRows(0)
	}
}

// Run validates the configuration and, if valid, runs the whole experiment:
// an initial inter-trial interval followed by Protocol.Trials trials.
// Afterward Trial.Cur is the index of the last trial run.
// On an invalid configuration nothing is run and the error is returned.
func (ev *Env) Run() error {
	if err := ev.Validate(); err != nil {
		return err
	}
	ev.Init()
	ev.RunBlock(ev.Protocol.ITIBlock())
	for trl := 0; trl < ev.Protocol.Trials; trl++ {
		ev.Trial.Set(trl)
		ev.RunTrial()
	}
	return nil
}

// RunTrial runs one trial of the experiment, then records the trial
// and calls TrialFunc.
func (ev *Env) RunTrial() {
	ev.Event.Init()
	for _, bl := range ev.Exp.Blocks(&ev.Protocol) {
		ev.RunBlock(bl)
	}
	ev.LogTrial()
	if ev.TrialFunc != nil {
		ev.TrialFunc(ev)
	}
}

// RunBlock runs the model for bl.Steps time steps with the block's
// stimuli and reinforcement.
func (ev *Env) RunBlock(bl Block) {
	ev.Block = bl
	x := bl.Stims.Vector()
	if ev.StepLog == nil {
		ev.Model.Steps(bl.Steps, x, bl.Rew)
		ev.Event.Cur += bl.Steps
		return
	}
	for k := 0; k < bl.Steps; k++ {
		ev.Model.Step(x, bl.Rew)
		ev.LogStep()
		ev.Event.Incr()
	}
}

// V returns the current associative strength for channel ch
func (ev *Env) V(ch td.Chans) float64 {
	return ev.Model.State.V[ch]
}

// LogTrial adds a row to TrialLog with the current model state
func (ev *Env) LogTrial() {
	dt := ev.TrialLog
	if dt == nil {
		return
	}
	st := &ev.Model.State
	row := dt.Rows
	dt.AddRows(1)
	dt.SetCellFloat("Trial", row, float64(ev.Trial.Cur))
	dt.SetCellFloat("Time", row, float64(st.Time))
	logChans(dt, row, st, false)
	dt.SetCellFloat("Vbar", row, st.PrvVbar)
}

// LogStep adds a row to StepLog with the current model state
func (ev *Env) LogStep() {
	dt := ev.StepLog
	if dt == nil {
		return
	}
	st := &ev.Model.State
	row := dt.Rows
	dt.AddRows(1)
	dt.SetCellFloat("Trial", row, float64(ev.Trial.Cur))
	dt.SetCellFloat("Event", row, float64(ev.Event.Cur))
	dt.SetCellFloat("Time", row, float64(st.Time))
	dt.SetCellString("Phase", row, ev.Block.Phase.String())
	dt.SetCellString("Stims", row, ev.Block.Stims.String())
	dt.SetCellFloat("Rew", row, ev.Block.Rew)
	dt.SetCellFloat("DA", row, ev.Model.DA)
	logChans(dt, row, st, true)
	dt.SetCellFloat("Vbar", row, st.PrvVbar)
}

// TrialV returns the associative strength for channel ch recorded
// at the end of given trial in TrialLog.
func (ev *Env) TrialV(trial int, ch td.Chans) float64 {
	return ev.TrialLog.CellFloat(VCol(ch), trial)
}

// Report returns the end-of-trial report line with the learned
// background and CS strengths.
func (ev *Env) Report() string {
	return fmt.Sprintf("V_background: %.6g   V_CS: %.6g", ev.V(td.BgChan), ev.V(td.CSChan))
}
