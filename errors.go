package persona

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStages  = errors.New("invalid stage table")
	ErrNoEngine       = errors.New("no audio engine attached")
	ErrUnknownBackend = errors.New("unknown audio backend")
)

// LifecycleError reports a failed suspend or resume of the audio engine.
// It is the only error a caller of the control surface ever sees.
type LifecycleError struct {
	Op  string // "resume", "pause"
	Err error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}
