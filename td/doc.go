// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package td implements the Temporal-Difference (TD) model of classical
conditioning as specified in:

	Sutton, R.S., Barto, A.G. (1990) "Time-Derivative Models of Pavlovian
	Reinforcement," in Learning and Computational Neuroscience: Foundations
	of Adaptive Networks, M. Gabriel and J. Moore, Eds., pp. 497--537.
	MIT Press.

The model is a single linear associator: each stimulus channel has an
associative strength V and an eroding stimulus trace, and on every time step
the strengths move in proportion to the trace times a TD error computed
from the reinforcement and the discounted change in the prediction Vbar.

* `params.go` has the fixed model constants (Alpha, Beta, Delta, Gamma).

* `state.go` defines the State that is updated by the model: strengths,
  traces, previous prediction and elapsed time.

* `vbar.go` computes the rectified prediction Vbar.

* `model.go` has the Model and its Step / Steps update.

* `stims.go` defines the stimulus channels and the named stimulus vectors
  used by the conditioning experiments in the `cond` package.
*/
package td
