package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const passthroughMeetup = `{
	"id": 6,
	"title": "VueJS Meetup",
	"imageId": 2,
	"date": 1614902400000,
	"place": "Moscow",
	"extra": {"nested": [1, 2]},
	"agenda": [
		{"id": 1, "type": "talk", "title": "Reactivity", "speaker": {"name": "x"}, "startsAt": "10:00"},
		{"id": 2, "type": "coffee", "language": null}
	]
}`

func TestRawMeetupKeepsUnknownFields(t *testing.T) {
	var m RawMeetup
	require.NoError(t, json.Unmarshal([]byte(passthroughMeetup), &m))
	require.Equal(t, 6, m.ID)
	require.Equal(t, "Moscow", m.Text("place"))
	require.JSONEq(t, `{"nested": [1, 2]}`, string(m.Extra["extra"]))
	require.NotContains(t, m.Extra, "title")
	require.Len(t, m.Agenda, 2)
	require.Equal(t, AgendaItemTalk, m.Agenda[0].Type)
	require.Equal(t, `{"name": "x"}`, m.Agenda[0].Text("speaker"))
	require.Equal(t, "10:00", m.Agenda[0].Text("startsAt"))
	require.Equal(t, "", m.Agenda[1].Text("language"))
	require.Equal(t, "", m.Agenda[1].Text("speaker"))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	expected := strings.Replace(passthroughMeetup, `"imageId": 2`, `"imageId": "2"`, 1)
	require.JSONEq(t, expected, string(data))
}

func TestViewMeetupKeepsUnknownFields(t *testing.T) {
	var m RawMeetup
	require.NoError(t, json.Unmarshal([]byte(passthroughMeetup), &m))
	view := ViewMeetup{
		RawMeetup: m,
		Cover:     "https://example.com/api/images/2",
		Agenda: []ViewAgendaItem{
			{RawAgendaItem: m.Agenda[0], Icon: "tv", Title: "Reactivity", IsSpeakerShown: true},
			{RawAgendaItem: m.Agenda[1], Icon: "coffee", Title: "Coffee Break"},
		},
		Date:           "March 5, 2021",
		DateOnlyString: "2021-03-05",
	}

	data, err := json.Marshal(view)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id": 6,
		"title": "VueJS Meetup",
		"imageId": "2",
		"date": "March 5, 2021",
		"dateOnlyString": "2021-03-05",
		"cover": "https://example.com/api/images/2",
		"place": "Moscow",
		"extra": {"nested": [1, 2]},
		"agenda": [
			{"id": 1, "type": "talk", "title": "Reactivity", "speaker": {"name": "x"}, "startsAt": "10:00", "icon": "tv", "isSpeakerShown": true},
			{"id": 2, "type": "coffee", "title": "Coffee Break", "language": null, "icon": "coffee", "isSpeakerShown": false}
		]
	}`, string(data))

	var decoded ViewMeetup
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "March 5, 2021", decoded.Date)
	require.Equal(t, "VueJS Meetup", decoded.Title)
	require.Equal(t, "Moscow", decoded.Text("place"))
	require.Len(t, decoded.Agenda, 2)
	require.Equal(t, "tv", decoded.Agenda[0].Icon)
	require.Equal(t, "Reactivity", decoded.Agenda[0].Title)
	require.Equal(t, `{"name":"x"}`, decoded.Agenda[0].Text("speaker"))
}

func TestEmptyViewMeetup(t *testing.T) {
	data, err := json.Marshal(ViewMeetup{})
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, []interface{}{}, decoded["agenda"])
}

func TestStringFields(t *testing.T) {
	f := StringFields("speaker", "Anna", "language", "RU")
	require.Equal(t, "Anna", f.Text("speaker"))
	require.Equal(t, "RU", f.Text("language"))
	require.Equal(t, "", f.Text("missing"))
}
