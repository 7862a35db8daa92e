package timeslot

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// timeslotDoc is the serialized form of a Timeslot. End is only
// informative: it is always recomputed when decoding.
type timeslotDoc struct {
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end,omitempty" yaml:"end,omitempty"`
	Hours   *int   `json:"hours,omitempty" yaml:"hours,omitempty"`
	Minutes *int   `json:"minutes,omitempty" yaml:"minutes,omitempty"`
}

func (t Timeslot) doc() timeslotDoc {
	hours, minutes := t.hours, t.minutes
	return timeslotDoc{
		Start:   Time(t.start).String(),
		End:     Time(t.End()).String(),
		Hours:   &hours,
		Minutes: &minutes,
	}
}

func (d *timeslotDoc) timeslot() (Timeslot, error) {
	hours, minutes := DefaultHours, DefaultMinutes
	if d.Hours != nil {
		hours = *d.Hours
	}
	if d.Minutes != nil {
		minutes = *d.Minutes
	}
	return New(d.Start, hours, minutes)
}

// MarshalJSON implements json.Marshaler.
//
//	{"start":"2024-01-01 10:15:00","end":"2024-01-01 12:44:59","hours":2,"minutes":30}
func (t Timeslot) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

// UnmarshalJSON implements json.Unmarshaler. Missing hours and
// minutes default to DefaultHours and DefaultMinutes.
func (t *Timeslot) UnmarshalJSON(data []byte) error {
	var doc timeslotDoc
	err := json.Unmarshal(data, &doc)
	if err != nil {
		return err
	}

	ts, err := doc.timeslot()
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timeslot) MarshalYAML() (any, error) {
	return t.doc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, see UnmarshalJSON.
func (t *Timeslot) UnmarshalYAML(value *yaml.Node) error {
	var doc timeslotDoc
	err := value.Decode(&doc)
	if err != nil {
		return err
	}

	ts, err := doc.timeslot()
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
