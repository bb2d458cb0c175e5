package engine

import "errors"

var (
	// ErrEmptySelection is returned when an answer submission carries no
	// selected options. An empty selection is a caller error, not a
	// wrong answer.
	ErrEmptySelection = errors.New("no answers selected")

	// ErrAlreadyAnswered is returned when a question already has a
	// recorded answer. Answers are immutable; re-submission is rejected,
	// never re-scored.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrQuestionNotInSession is returned when the submitted question id
	// is not part of the session's bound question set.
	ErrQuestionNotInSession = errors.New("question not in session")
)
