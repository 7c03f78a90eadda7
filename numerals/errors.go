package numerals

import "errors"

// ErrUnknownSystem is returned by FromName for names outside the
// declared set. Match with errors.Is.
var ErrUnknownSystem = errors.New("numerals: unknown numeral system")
