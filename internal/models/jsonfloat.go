package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// JSONFloat64 is a float64 that survives JSON encoding when infinite.
// encoding/json rejects +Inf, but the payback period is defined as +Inf
// whenever the annual return is non-positive.
type JSONFloat64 float64

func (f JSONFloat64) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"inf"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(v)
}

func (f *JSONFloat64) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch s {
	case `"inf"`:
		*f = JSONFloat64(math.Inf(1))
		return nil
	case `"-inf"`:
		*f = JSONFloat64(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = JSONFloat64(v)
	return nil
}
