package emitter

import (
	"fmt"
	"strings"

	"github.com/aretw0/combogen/pkg/domain"
)

type collisionError struct {
	id   string
	a, b []string
}

func (e *collisionError) Error() string {
	return fmt.Sprintf("%s: %s used for [%s] and [%s]",
		domain.ErrNameCollision, e.id, strings.Join(e.a, ", "), strings.Join(e.b, ", "))
}

func (e *collisionError) Unwrap() error { return domain.ErrNameCollision }
