package domain

import (
	"fmt"
	"math"
)

// StageIndex returns the zero-based position of s in the canonical
// lifecycle, or -1 if s is not a known stage.
func StageIndex(s Stage) int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return -1
}

// StageProgress derives the 0-100 completion percentage for a stage:
// round(100 * (index+1) / stageCount). Origination yields 17, Closed 100.
// An unknown stage is an error; callers must not persist a progress value
// computed from an unrecognized stage.
func StageProgress(s Stage) (int, error) {
	idx := StageIndex(s)
	if idx < 0 {
		return 0, fmt.Errorf("unknown stage %q", s)
	}
	return int(math.Round(100 * float64(idx+1) / float64(len(Stages)))), nil
}
