package bisect

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned by the Range variants when lo and hi do not
// satisfy 0 <= lo <= hi <= len(a).
var ErrInvalidRange = errors.New("invalid search range")

func checkRange(n, lo, hi int) error {
	if lo < 0 || hi < lo || hi > n {
		return fmt.Errorf("%w: lo=%d hi=%d len=%d", ErrInvalidRange, lo, hi, n)
	}
	return nil
}
