// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cond runs classical conditioning experiments on the TD model
in package td.

An experiment is a fixed sequence of blocks of time steps, each with
constant stimuli and reinforcement: an initial inter-trial interval
followed by a number of trials, each made of CS, trace, US and
inter-trial-interval blocks in an order given by the experiment.

* `experiments.go` has the Experiments enum (trace and backward
  conditioning) and the block sequence for each.

* `protocol.go` has the Protocol timing parameters and their validation
  against the chosen experiment.

* `env.go` has the Env that owns a td.Model and runs an experiment,
  calling TrialFunc after each trial.

* `logs.go` configures the etable trial and step logs written by the Env.
*/
package cond
