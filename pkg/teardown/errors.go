package teardown

import "errors"

// ErrTeardownBlocked is returned when a project still holds work that is not upstream.
var ErrTeardownBlocked = errors.New("refusing to remove the project")
