// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

import "errors"

// Max is the largest number a single Cistercian glyph can encode.
const Max = 9999

// ErrRange is returned when a number outside [0,Max] is given to an
// encoding function.
var ErrRange = errors.New("number must be between 0 and 9999")

// Split breaks a number into its four decimal digits.
func Split(n int) (units, tens, hundreds, thousands int) {
	return n % 10, (n / 10) % 10, (n / 100) % 10, (n / 1000) % 10
}

// Combine reassembles four decimal digits into a number.
func Combine(units, tens, hundreds, thousands int) int {
	return thousands*1000 + hundreds*100 + tens*10 + units
}
