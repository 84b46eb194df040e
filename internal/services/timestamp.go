package services

import "time"

// timestampLayout pads fractional seconds to a fixed width so that the
// lexicographic order of stored timestamps matches chronological order.
const timestampLayout = "2006-01-02T15:04:05.0000000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
