package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a numeric string. null and "" leave it
// unset.
type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = FlexInt{}
		return nil
	}

	var n json.Number
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*f = FlexInt{}
			return nil
		}
		n = json.Number(s)
	} else {
		n = json.Number(b)
	}

	v, err := strconv.Atoi(n.String())
	if err != nil {
		if fl, ferr := strconv.ParseFloat(n.String(), 64); ferr == nil && fl == float64(int(fl)) {
			v = int(fl)
		} else {
			return fmt.Errorf("invalid integer %s", b)
		}
	}

	*f = FlexInt{Value: v, Set: true}
	return nil
}

func (f FlexInt) Ptr() *int {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// ID returns the value as a positive identifier, or nil.
func (f FlexInt) ID() *uint {
	if !f.Set || f.Value <= 0 {
		return nil
	}
	v := uint(f.Value)
	return &v
}

// FlexBool decodes a JSON bool or one of the usual form strings
// ("true", "1", "si", "sí", "false", "0", "no").
type FlexBool struct {
	Value bool
	Set   bool
}

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*f = FlexBool{}
	case bool:
		*f = FlexBool{Value: v, Set: true}
	case float64:
		*f = FlexBool{Value: v != 0, Set: true}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "si", "sí", "yes":
			*f = FlexBool{Value: true, Set: true}
		case "false", "0", "no":
			*f = FlexBool{Value: false, Set: true}
		case "":
			*f = FlexBool{}
		default:
			return fmt.Errorf("invalid boolean %q", v)
		}
	default:
		return fmt.Errorf("invalid boolean %s", b)
	}
	return nil
}

func (f FlexBool) Ptr() *bool {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// FlexIDs decodes a list of identifiers given as numbers or numeric strings.
type FlexIDs []uint

func (ids *FlexIDs) UnmarshalJSON(b []byte) error {
	var raw []FlexInt
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := make(FlexIDs, 0, len(raw))
	for _, r := range raw {
		if id := r.ID(); id != nil {
			out = append(out, *id)
		}
	}
	*ids = out
	return nil
}
