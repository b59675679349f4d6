package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DrawData is one drawing as returned by the ALC winning numbers API.
// Only the two timestamps and a non-null next_draw are interpreted; every
// other field, including game and draw, is kept verbatim in Extra.
type DrawData struct {
	DrawDate     string
	LastEditDate string
	NextDraw     *NextDraw
	Extra        map[string]json.RawMessage
}

const (
	drawDateKey     = "draw_date"
	lastEditDateKey = "last_edit_date"
	nextDrawKey     = "next_draw"
)

// UnmarshalJSON implements json.Unmarshaler
func (d *DrawData) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*d = DrawData{}
	for key, dst := range map[string]*string{
		drawDateKey:     &d.DrawDate,
		lastEditDateKey: &d.LastEditDate,
	} {
		if raw, ok := fields[key]; ok {
			if err := json.Unmarshal(raw, dst); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			delete(fields, key)
		}
	}
	if raw, ok := fields[nextDrawKey]; ok && !isNull(raw) {
		d.NextDraw = &NextDraw{}
		if err := json.Unmarshal(raw, d.NextDraw); err != nil {
			return fmt.Errorf("%s: %w", nextDrawKey, err)
		}
		delete(fields, nextDrawKey)
	}
	d.Extra = fields
	return nil
}

// MarshalJSON implements json.Marshaler
func (d DrawData) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.Extra)+3)
	for k, v := range d.Extra {
		fields[k] = v
	}
	values := map[string]any{
		drawDateKey:     d.DrawDate,
		lastEditDateKey: d.LastEditDate,
	}
	if d.NextDraw != nil {
		values[nextDrawKey] = d.NextDraw
	}
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// NextDraw previews the upcoming drawing. Only DrawDate is interpreted;
// any other field is kept verbatim in Extra.
type NextDraw struct {
	DrawDate string
	Extra    map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NextDraw) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields[drawDateKey]; ok {
		if err := json.Unmarshal(raw, &n.DrawDate); err != nil {
			return err
		}
		delete(fields, drawDateKey)
	}
	n.Extra = fields
	return nil
}

// MarshalJSON implements json.Marshaler
func (n NextDraw) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(n.Extra)+1)
	for k, v := range n.Extra {
		fields[k] = v
	}
	date, err := json.Marshal(n.DrawDate)
	if err != nil {
		return nil, err
	}
	fields[drawDateKey] = date
	return json.Marshal(fields)
}

// clone returns a copy of n that shares no map with the original
func (n *NextDraw) clone() *NextDraw {
	if n == nil {
		return nil
	}
	return &NextDraw{DrawDate: n.DrawDate, Extra: cloneFields(n.Extra)}
}

// Clone returns a copy of d that shares no map with the original
func (d DrawData) Clone() DrawData {
	d.NextDraw = d.NextDraw.clone()
	d.Extra = cloneFields(d.Extra)
	return d
}

func cloneFields(fields map[string]json.RawMessage) map[string]json.RawMessage {
	if fields == nil {
		return nil
	}
	c := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		c[k] = v
	}
	return c
}

// DrawDate is a single entry of the draw dates endpoint. The API sends
// objects of the form {"draw_date": "..."}; bare strings are also accepted.
type DrawDate struct {
	DrawDate string `json:"draw_date"`
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DrawDate) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &d.DrawDate)
	}
	type plain DrawDate
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*d = DrawDate(p)
	return nil
}

// DrawDatesResponse is the body of the draw dates endpoint
type DrawDatesResponse struct {
	DrawDates []DrawDate `json:"draw_dates"`
}
