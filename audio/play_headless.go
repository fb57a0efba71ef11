//go:build headless

package audio

import "errors"

var errHeadless = errors.New("built without audio output (headless tag)")

func NewPortAudio(e *Engine) (Backend, error) { return nil, errHeadless }
func NewOto(e *Engine) (Backend, error)       { return nil, errHeadless }
