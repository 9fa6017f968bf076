package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a string field that also accepts JSON numbers and booleans,
// storing their text form ({"name":42} becomes "42"). Objects and arrays
// are rejected.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	s, err := textOf(v)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// Tags is a list of strings. A single scalar is accepted as a one-element
// list, and each element is converted like Text.
type Tags []string

func (t *Tags) UnmarshalJSON(b []byte) error {
	v, err := decodeAny(b)
	if err != nil {
		return err
	}
	list, ok := v.([]interface{})
	if !ok {
		s, err := textOf(v)
		if err != nil {
			return err
		}
		*t = Tags{s}
		return nil
	}
	out := make(Tags, 0, len(list))
	for _, e := range list {
		s, err := textOf(e)
		if err != nil {
			return err
		}
		out = append(out, s)
	}
	*t = out
	return nil
}

func decodeAny(b []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func textOf(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String(), nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	raw, _ := json.Marshal(v)
	return "", fmt.Errorf("cast to string failed for value %s", raw)
}
