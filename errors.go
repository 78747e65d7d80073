package linkstack

import (
	"github.com/pkg/errors"
)

// ErrEmpty is returned by TryPop when the list holds no node.
var ErrEmpty = errors.New("linkstack: list empty")
