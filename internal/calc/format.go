package calc

import (
	"math"
	"strconv"

	"fortio.org/safecast"
)

// FormatResult renders a float result for the buffer. Integral values have no decimal point;
// everything else uses the shortest decimal form that round-trips. Exponents are
// never used, so the result can always be appended to and evaluated again.
func FormatResult(v float64) string {
	if v == math.Trunc(v) {
		if n, err := safecast.Convert[int64](v); err == nil {
			return strconv.FormatInt(n, 10)
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
