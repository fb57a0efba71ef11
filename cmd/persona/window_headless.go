//go:build headless

package main

import (
	"context"
	"errors"
)

func runWindow(ctx context.Context, s *session, notes <-chan noteOn) error {
	return errors.New("the window is not available in headless builds")
}
