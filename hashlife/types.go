package hashlife

import "errors"

var (
	ErrLevelTooLow  = errors.New("hashlife: node level must be at least 2")
	ErrTooManySteps = errors.New("hashlife: steps exceed the macro-step for the node level")
)
