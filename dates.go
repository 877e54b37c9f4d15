package worldtides

import "time"

const (
	// apiDateFormat is the timestamp format the API emits, minute precision
	// with a numeric UTC offset, e.g. "2021-02-17T05:37+0000".
	apiDateFormat = "2006-01-02T15:04-0700"

	// requestDateFormat is the coarser format for the outgoing date query
	// value.
	requestDateFormat = "2006-01-02"
)

// parseAPIDate decodes a response timestamp into an absolute instant.
func parseAPIDate(value string) (time.Time, error) {
	t, err := time.Parse(apiDateFormat, value)
	if err != nil {
		return time.Time{}, NewDateParseError(value, err)
	}
	return t, nil
}

// formatRequestDate encodes the starting date for the request query string.
func formatRequestDate(date time.Time) string {
	return date.Format(requestDateFormat)
}
