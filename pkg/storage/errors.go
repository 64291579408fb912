package storage

import (
	"fmt"

	"github.com/darkmastermindz/emojicode/pkg/typesys"
)

// BoxRequiredError reports an illegal Unbox call: the type's kind requires
// a box regardless of the force-box flag (e.g. it is a Protocol).
type BoxRequiredError struct {
	Type typesys.Type
}

func (e *BoxRequiredError) Error() string {
	return fmt.Sprintf("cannot unbox %s: storage class requires a box", e.Type)
}

func errBoxRequired(t typesys.Type) error {
	return &BoxRequiredError{Type: t}
}
