// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cond

import (
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/tdmodel/td"
	"github.com/goki/gi/gi"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 8

// VCol returns the log column name for the associative strength of channel ch
func VCol(ch td.Chans) string {
	return "V_" + ch.Label()
}

// TraceCol returns the log column name for the trace of channel ch
func TraceCol(ch td.Chans) string {
	return "Trace_" + ch.Label()
}

// chanCols adds V and Trace columns for each channel to schema
func chanCols(sch etable.Schema, traces bool) etable.Schema {
	for ch := td.Chans(0); ch < td.ChansN; ch++ {
		sch = append(sch, etable.Column{VCol(ch), etensor.FLOAT64, nil, nil})
	}
	if traces {
		for ch := td.Chans(0); ch < td.ChansN; ch++ {
			sch = append(sch, etable.Column{TraceCol(ch), etensor.FLOAT64, nil, nil})
		}
	}
	return sch
}

// ConfigTrialLog configures dt to record the model state at the end of each trial
func ConfigTrialLog(dt *etable.Table) {
	dt.SetMetaData("name", "TrialLog")
	dt.SetMetaData("desc", "model state at the end of each trial")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{"Trial", etensor.INT64, nil, nil},
		{"Time", etensor.INT64, nil, nil},
	}
	sch = chanCols(sch, false)
	sch = append(sch, etable.Column{"Vbar", etensor.FLOAT64, nil, nil})
	dt.SetFromSchema(sch, 0)
}

// ConfigStepLog configures dt to record the model state after every time step
func ConfigStepLog(dt *etable.Table) {
	dt.SetMetaData("name", "StepLog")
	dt.SetMetaData("desc", "model state after every time step")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{"Trial", etensor.INT64, nil, nil},
		{"Event", etensor.INT64, nil, nil},
		{"Time", etensor.INT64, nil, nil},
		{"Phase", etensor.STRING, nil, nil},
		{"Stims", etensor.STRING, nil, nil},
		{"Rew", etensor.FLOAT64, nil, nil},
		{"DA", etensor.FLOAT64, nil, nil},
	}
	sch = chanCols(sch, true)
	sch = append(sch, etable.Column{"Vbar", etensor.FLOAT64, nil, nil})
	dt.SetFromSchema(sch, 0)
}

// logChans writes the current V (and optionally Trace) values to row of dt
func logChans(dt *etable.Table, row int, st *td.State, traces bool) {
	for ch := td.Chans(0); ch < td.ChansN; ch++ {
		dt.SetCellFloat(VCol(ch), row, st.V[ch])
		if traces {
			dt.SetCellFloat(TraceCol(ch), row, st.Trace[ch])
		}
	}
}

// SaveLog saves dt as a tab-separated file with headers
func SaveLog(dt *etable.Table, fname string) error {
	return dt.SaveCSV(gi.FileName(fname), etable.Tab, etable.Headers)
}
