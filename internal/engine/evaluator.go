package engine

// Evaluate scores a selection against a question's correct-answer set.
// The selection is correct iff it equals the correct set exactly: same
// members, nothing missing, nothing extra. Single-choice questions are
// just the case where the correct set has size 1, so the same rule
// applies to both answer types.
//
// The selection must be non-empty; callers reject empty selections
// before evaluation (see Session.SubmitAnswer).
func Evaluate(q Question, selected []int) bool {
	correct := make(map[int]bool, len(q.Answers))
	for _, a := range q.Answers {
		if a.IsCorrect {
			correct[a.ID] = true
		}
	}

	chosen := make(map[int]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	if len(chosen) != len(correct) {
		return false
	}
	for id := range chosen {
		if !correct[id] {
			return false
		}
	}
	return true
}
