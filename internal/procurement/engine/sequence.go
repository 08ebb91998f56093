package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// NextID derives the next sequential business id from the ids already issued:
// the highest numeric suffix behind the prefix, plus one, zero-padded to three
// digits (wider numbers extend naturally). Ids that do not carry the prefix
// followed by digits are skipped so one malformed row cannot block new
// registrations. With no parseable ids at all the sequence starts at 001.
//
// The result is advisory. Two concurrent callers can derive the same id from
// the same snapshot; only the store's uniqueness constraint makes an id final,
// and the caller retries on a reported collision.
func NextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		suffix, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
