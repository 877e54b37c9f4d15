package models

import (
	"fmt"
	"time"
)

// TideType identifies a tidal extremum as a local maximum or minimum of the
// height curve.
type TideType string

const (
	TideTypeHigh TideType = "High"
	TideTypeLow  TideType = "Low"
)

// ParseTideType converts the wire value of an extremum type into a TideType.
// The set is closed and case-sensitive; anything outside it is an error, never
// a default.
func ParseTideType(value string) (TideType, error) {
	switch value {
	case string(TideTypeHigh):
		return TideTypeHigh, nil
	case string(TideTypeLow):
		return TideTypeLow, nil
	default:
		return "", NewUnknownTideTypeError(value)
	}
}

// Height is a single point on the predicted height curve. Height is in meters
// relative to the station datum and may be negative.
type Height struct {
	Time   time.Time
	Height float64
}

// Extreme is a single predicted high or low tide.
type Extreme struct {
	Time   time.Time
	Height float64
	Type   TideType
}

// TideHeights wraps the predicted height curve. Order matches the API
// response.
type TideHeights struct {
	Heights []Height
}

// TideExtremes wraps the predicted extremes. Order matches the API response.
type TideExtremes struct {
	Extremes []Extreme
}

// Tides holds any combination of requested tide data. A nil field means the
// corresponding data type was not requested or the API omitted it; an empty
// non-nil series means it was requested and came back empty.
type Tides struct {
	Heights  *TideHeights
	Extremes *TideExtremes
}

// TideDataType names a requestable category of tide data. The value doubles
// as the API query flag.
type TideDataType string

const (
	DataTypeHeights  TideDataType = "heights"
	DataTypeExtremes TideDataType = "extremes"
	// Future: stations, datums
)

// QueryFlag returns the query-string flag for this data type.
func (d TideDataType) QueryFlag() string {
	return string(d)
}

// UnknownTideTypeError reports an extremum type outside the closed High/Low
// set.
type UnknownTideTypeError struct {
	Value string
}

func (e *UnknownTideTypeError) Error() string {
	return fmt.Sprintf("unknown tide type: %q", e.Value)
}

func NewUnknownTideTypeError(value string) *UnknownTideTypeError {
	return &UnknownTideTypeError{Value: value}
}
