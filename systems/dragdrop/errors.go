package dragdrop

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
)

// ErrMissingComponent is wrapped by every MissingComponentError
var ErrMissingComponent = errors.New("missing component")

// MissingComponentError is returned when an event targets an entity that
// lacks a component the transition needs. No state has been changed when
// it is returned.
type MissingComponentError struct {
	Entity    donburi.Entity
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("entity %v: %s component not added", e.Entity, e.Component)
}

func (e *MissingComponentError) Unwrap() error {
	return ErrMissingComponent
}
