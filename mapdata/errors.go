package mapdata

import "errors"

// ErrInvalidMap is the sentinel for every structural problem found by Validate.
// Details are attached with %w wrapping.
var ErrInvalidMap = errors.New("mapdata: invalid map")
