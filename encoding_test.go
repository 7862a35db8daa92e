package timeslot

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/maxatome/go-testdeep/td"
	"gopkg.in/yaml.v3"
)

func TestJSON(tt *testing.T) {
	t := td.NewT(tt)

	ts := FromTime(time.Date(2024, time.January, 1, 10, 15, 30, 0, time.Local), 2, 30)

	buf, err := json.Marshal(ts)
	if t.CmpNoError(err) {
		t.Cmp(string(buf),
			`{"start":"2024-01-01 10:15:00","end":"2024-01-01 12:44:59","hours":2,"minutes":30}`)
	}

	// JSON representation inside a struct
	t.Cmp(struct {
		Slot  Timeslot  `json:"slot"`
		PSlot *Timeslot `json:"pslot"`
	}{Slot: ts, PSlot: &ts},
		td.JSON(`{
  "slot": {
    "start":   "2024-01-01 10:15:00",
    "end":     "2024-01-01 12:44:59",
    "hours":   2,
    "minutes": 30
  },
  "pslot": {
    "start":   "2024-01-01 10:15:00",
    "end":     "2024-01-01 12:44:59",
    "hours":   2,
    "minutes": 30
  }
}`))

	var got Timeslot
	if t.CmpNoError(json.Unmarshal([]byte(
		`{"start":"2024-01-01 10:15:00","end":"1970-01-01 00:00:00","hours":2,"minutes":30}`),
		&got)) {
		// end is recomputed
		t.True(got.Equal(ts))
		t.Cmp(got.End(), td.TruncTime(ts.End()))
	}

	// Default duration
	if t.CmpNoError(json.Unmarshal([]byte(`{"start":"2024-01-01 10:15:42"}`), &got)) {
		t.Cmp(got.String(), "2024-01-01 10:15:00 - 2024-01-01 11:14:59")
	}

	// Errors
	t.CmpError(json.Unmarshal([]byte(`[]`), &got))
	t.CmpErrorIs(json.Unmarshal([]byte(`{"start":"foo"}`), &got), ErrUnparsableStart)
	t.CmpErrorIs(json.Unmarshal([]byte(`{}`), &got), ErrUnparsableStart)
	t.CmpErrorIs(
		json.Unmarshal([]byte(`{"start":"2024-01-01 10:15:00","hours":-1}`), &got),
		ErrInvalidDuration)

	// Failed unmarshaling leaves got untouched
	t.Cmp(got.String(), "2024-01-01 10:15:00 - 2024-01-01 11:14:59")
}

func TestYAML(tt *testing.T) {
	t := td.NewT(tt)

	ts := FromTime(time.Date(2024, time.January, 1, 10, 15, 30, 0, time.Local), 0, 45)

	buf, err := yaml.Marshal(ts)
	if t.CmpNoError(err) {
		t.Cmp(string(buf), `start: "2024-01-01 10:15:00"
end: "2024-01-01 10:59:59"
hours: 0
minutes: 45
`)
	}

	var doc struct {
		Slots []Timeslot `yaml:"slots"`
	}
	err = yaml.Unmarshal([]byte(`
slots:
  - start: 2024-01-01 10:15:00
    hours: 0
    minutes: 45
  - start: "2024-01-01 11:00:00"
`), &doc)
	if t.CmpNoError(err) && t.Cmp(doc.Slots, td.Len(2)) {
		t.True(doc.Slots[0].Equal(ts))
		t.Cmp(doc.Slots[1].String(), "2024-01-01 11:00:00 - 2024-01-01 11:59:59")
	}

	err = yaml.Unmarshal([]byte(`slots: [{start: foo}]`), &doc)
	t.CmpErrorIs(err, ErrUnparsableStart)

	err = yaml.Unmarshal([]byte(`slots: [[]]`), &doc)
	t.CmpError(err)
}
