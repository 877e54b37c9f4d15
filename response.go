package worldtides

import (
	"github.com/bbernstein/worldtides-go/models"
)

// Wire mirrors of the worldtides.info JSON payloads. These are decoded per
// response, consumed during mapping and never retained. Fields the library
// does not use are left out and ignored by the decoder.

type heightRecord struct {
	Dt     int64   `json:"dt"`
	Date   string  `json:"date"`
	Height float64 `json:"height"`
}

type extremeRecord struct {
	Dt     int64   `json:"dt"`
	Date   string  `json:"date"`
	Height float64 `json:"height"`
	Type   string  `json:"type"`
}

type tideHeightsResponse struct {
	Status  int            `json:"status"`
	Error   string         `json:"error,omitempty"`
	Heights []heightRecord `json:"heights"`
}

type tideExtremesResponse struct {
	Status   int             `json:"status"`
	Error    string          `json:"error,omitempty"`
	Extremes []extremeRecord `json:"extremes"`
}

// tidesResponse carries any combination of sections, depending on which
// query flags the request included. A nil slice means the section was absent
// from the payload; an empty non-nil slice means it was present but empty.
type tidesResponse struct {
	Status   int             `json:"status"`
	Error    string          `json:"error,omitempty"`
	Heights  []heightRecord  `json:"heights"`
	Extremes []extremeRecord `json:"extremes"`
}

func (r heightRecord) toHeight() (models.Height, error) {
	t, err := parseAPIDate(r.Date)
	if err != nil {
		return models.Height{}, err
	}
	return models.Height{
		Time:   t,
		Height: r.Height,
	}, nil
}

func (r extremeRecord) toExtreme() (models.Extreme, error) {
	t, err := parseAPIDate(r.Date)
	if err != nil {
		return models.Extreme{}, err
	}
	tideType, err := models.ParseTideType(r.Type)
	if err != nil {
		return models.Extreme{}, err
	}
	return models.Extreme{
		Time:   t,
		Height: r.Height,
		Type:   tideType,
	}, nil
}

// mapHeights converts a wire height list element-wise, preserving length and
// order. The first bad record fails the whole list.
func mapHeights(records []heightRecord) ([]models.Height, error) {
	heights := make([]models.Height, len(records))
	for i, r := range records {
		h, err := r.toHeight()
		if err != nil {
			return nil, err
		}
		heights[i] = h
	}
	return heights, nil
}

func mapExtremes(records []extremeRecord) ([]models.Extreme, error) {
	extremes := make([]models.Extreme, len(records))
	for i, r := range records {
		e, err := r.toExtreme()
		if err != nil {
			return nil, err
		}
		extremes[i] = e
	}
	return extremes, nil
}

func (r *tideHeightsResponse) toTideHeights() (models.TideHeights, error) {
	heights, err := mapHeights(r.Heights)
	if err != nil {
		return models.TideHeights{}, err
	}
	return models.TideHeights{Heights: heights}, nil
}

func (r *tideExtremesResponse) toTideExtremes() (models.TideExtremes, error) {
	extremes, err := mapExtremes(r.Extremes)
	if err != nil {
		return models.TideExtremes{}, err
	}
	return models.TideExtremes{Extremes: extremes}, nil
}

// toTides maps the sections independently: each section present in the
// payload becomes a non-nil series, absent sections stay nil. A mapping
// failure in either section fails the whole response.
func (r *tidesResponse) toTides() (models.Tides, error) {
	var tides models.Tides

	if r.Heights != nil {
		heights, err := mapHeights(r.Heights)
		if err != nil {
			return models.Tides{}, err
		}
		tides.Heights = &models.TideHeights{Heights: heights}
	}

	if r.Extremes != nil {
		extremes, err := mapExtremes(r.Extremes)
		if err != nil {
			return models.Tides{}, err
		}
		tides.Extremes = &models.TideExtremes{Extremes: extremes}
	}

	return tides, nil
}
