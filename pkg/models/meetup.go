package models

import "encoding/json"

// RawMeetup types only the fields the page reads. Everything else the API
// sends is kept verbatim in Extra and written back on encoding.
type RawMeetup struct {
	ID      int             `json:"id"`
	Title   string          `json:"title"`
	ImageID Identifier      `json:"imageId"`
	Date    Timestamp       `json:"date"`
	Agenda  []RawAgendaItem `json:"agenda"`
	Extra   Fields          `json:"-"`
}

var meetupKeys = []string{"id", "title", "imageId", "date", "agenda"}

func (m *RawMeetup) UnmarshalJSON(data []byte) error {
	type plain RawMeetup
	var p plain
	extra, err := splitFields(data, &p, meetupKeys)
	if err != nil {
		return err
	}
	p.Extra = extra
	*m = RawMeetup(p)
	return nil
}

func (m RawMeetup) MarshalJSON() ([]byte, error) {
	type plain RawMeetup
	return mergeFields(plain(m), m.Extra)
}

// Text returns a passthrough field as a string, see Fields.Text.
func (m RawMeetup) Text(key string) string {
	return m.Extra.Text(key)
}

// ViewMeetup is RawMeetup reshaped for presentation. Date and Agenda shadow
// the raw fields of the same name.
type ViewMeetup struct {
	RawMeetup
	Cover          string           `json:"cover"`
	Agenda         []ViewAgendaItem `json:"agenda"`
	Date           string           `json:"date"`
	DateOnlyString string           `json:"dateOnlyString"`
}

type viewMeetupFields struct {
	Cover          string           `json:"cover"`
	Agenda         []ViewAgendaItem `json:"agenda"`
	Date           string           `json:"date"`
	DateOnlyString string           `json:"dateOnlyString"`
}

var viewMeetupKeys = []string{"cover", "agenda", "date", "dateOnlyString"}

func (v ViewMeetup) MarshalJSON() ([]byte, error) {
	raw, err := v.RawMeetup.MarshalJSON()
	if err != nil {
		return nil, err
	}
	agenda := v.Agenda
	if agenda == nil {
		agenda = []ViewAgendaItem{}
	}
	return overlay(raw, viewMeetupFields{
		Cover:          v.Cover,
		Agenda:         agenda,
		Date:           v.Date,
		DateOnlyString: v.DateOnlyString,
	})
}

// UnmarshalJSON reads a view back. The raw date and agenda are not
// recoverable from a view and stay empty.
func (v *ViewMeetup) UnmarshalJSON(data []byte) error {
	var fields viewMeetupFields
	rest, err := splitFields(data, &fields, viewMeetupKeys)
	if err != nil {
		return err
	}
	var raw RawMeetup
	if err = raw.fromFields(rest); err != nil {
		return err
	}
	*v = ViewMeetup{
		RawMeetup:      raw,
		Cover:          fields.Cover,
		Agenda:         fields.Agenda,
		Date:           fields.Date,
		DateOnlyString: fields.DateOnlyString,
	}
	return nil
}

func (m *RawMeetup) fromFields(fields Fields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return m.UnmarshalJSON(data)
}
