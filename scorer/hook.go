// SPDX-License-Identifier: MIT

package scorer

import (
	"time"

	"github.com/katalvlaran/lvlin/tensor"
)

// Stage names one of the two Predict calls made by Score.
type Stage int

const (
	// StageCombined is the call over the N·K superposed inputs.
	StageCombined Stage = iota

	// StageComponents is the call over the N centres followed by the N·K neighbours.
	StageComponents
)

func (s Stage) String() string {
	switch s {
	case StageCombined:
		return "combined"
	case StageComponents:
		return "components"
	default:
		return "unknown"
	}
}

// Phase tells whether an Event precedes or follows a Predict call.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseDone
)

func (p Phase) String() string {
	if p == PhaseStart {
		return "start"
	}
	return "done"
}

// Event describes one side of a Predict call.
// Channels, Elapsed and Err are only set on PhaseDone.
type Event struct {
	Stage      Stage
	Phase      Phase
	Rows       int
	InputShape tensor.Shape
	Channels   int
	Elapsed    time.Duration
	Err        error
}

// Hook receives telemetry events. It runs synchronously on the scoring goroutine.
type Hook func(Event)

func (h Hook) emit(ev Event) {
	if h != nil {
		h(ev)
	}
}
