package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

// Store keys are decimal ids for rooms and items, lowercase names for users.
var keyPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type ValidatingSpec interface {
	Validate() error
}

// Asset is the on-disk envelope for a stored record.
type Asset[T ValidatingSpec] struct {
	Version uint   `json:"version"`
	Key     string `json:"key"`
	Spec    T      `json:"spec"`
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Key == "" {
		el.Add(fmt.Errorf("key must be set"))
	} else if !keyPattern.MatchString(a.Key) {
		el.Add(fmt.Errorf("key must be a lowercase name or decimal id"))
	}

	el.Add(a.Spec.Validate())

	return el.Err()
}
