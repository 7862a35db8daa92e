package timeslot

import (
	"encoding/xml"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Time is a second precision instant, formatted and parsed using
// the layout
//
//	2006-01-02 15:04:05
//
// considered as being a localtime value (see Config.Location).
type Time time.Time

// ParseTime parses a time information using DefaultConfig. Without a
// time zone it is considered as a local time.
func ParseTime(value string) (Time, error) {
	return DefaultConfig.ParseTime(value)
}

// String returns the time formatted using the format string
//
//	2006-01-02 15:04:05
func (t Time) String() string {
	return time.Time(t).Format(timeLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	tm, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = tm
	return nil
}

// UnmarshalXML decodes a time embedded in XML.
func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var str string
	err := d.DecodeElement(&str, &start)
	if err != nil {
		return err
	}
	return t.UnmarshalText([]byte(str))
}
