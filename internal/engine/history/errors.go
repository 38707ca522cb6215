package history

import "errors"

// ErrNodeNotFound indicates a node index outside the history.
var ErrNodeNotFound = errors.New("history node not found")
