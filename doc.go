// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tdmodel is the overall repository for the Sutton & Barto (1990)
Temporal-Difference (TD) model of classical conditioning, implemented
in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* td: the model itself -- associative strengths and eroding stimulus traces
updated every time step from a TD prediction error, with the rectified
prediction Vbar.

* cond: conditioning experiments (trace and backward conditioning) that
run fixed sequences of stimuli and reinforcement through a td.Model and
log the learned strengths at the end of each trial.

* examples: these actually compile into runnable programs.  examples/tdcond
runs one experiment from the command line, e.g., `tdcond -mode backward -isi 2`.
*/
package tdmodel
