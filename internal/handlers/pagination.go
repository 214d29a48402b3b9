package handlers

import (
	"math"
	"strconv"
)

// parseListingInt parses a pagination query value, substituting the default
// when the value is missing, non-numeric or zero. Negative values are passed
// through unvalidated; Mongo rejects the resulting negative skip and the
// request surfaces the generic db error.
func parseListingInt(value string, defaultValue int64) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed == 0 {
		return defaultValue
	}
	return parsed
}

func computePages(count int64, pageSize int64) int64 {
	return int64(math.Ceil(float64(count) / float64(pageSize)))
}
