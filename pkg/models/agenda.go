package models

import "encoding/json"

type AgendaItemType string

const (
	AgendaItemRegistration AgendaItemType = "registration"
	AgendaItemOpening      AgendaItemType = "opening"
	AgendaItemBreak        AgendaItemType = "break"
	AgendaItemCoffee       AgendaItemType = "coffee"
	AgendaItemClosing      AgendaItemType = "closing"
	AgendaItemAfterparty   AgendaItemType = "afterparty"
	AgendaItemTalk         AgendaItemType = "talk"
	AgendaItemOther        AgendaItemType = "other"
)

// RawAgendaItem keeps speaker, startsAt and the other type specific fields
// in Extra.
type RawAgendaItem struct {
	ID    int            `json:"id,omitempty"`
	Type  AgendaItemType `json:"type"`
	Title string         `json:"title,omitempty"`
	Extra Fields         `json:"-"`
}

var agendaItemKeys = []string{"id", "type", "title"}

func (i *RawAgendaItem) UnmarshalJSON(data []byte) error {
	type plain RawAgendaItem
	var p plain
	extra, err := splitFields(data, &p, agendaItemKeys)
	if err != nil {
		return err
	}
	p.Extra = extra
	*i = RawAgendaItem(p)
	return nil
}

func (i RawAgendaItem) MarshalJSON() ([]byte, error) {
	type plain RawAgendaItem
	return mergeFields(plain(i), i.Extra)
}

func (i RawAgendaItem) Text(key string) string {
	return i.Extra.Text(key)
}

type ViewAgendaItem struct {
	RawAgendaItem
	Icon           string `json:"icon"`
	Title          string `json:"title"`
	IsSpeakerShown bool   `json:"isSpeakerShown"`
}

type viewAgendaItemFields struct {
	Icon           string `json:"icon"`
	Title          string `json:"title"`
	IsSpeakerShown bool   `json:"isSpeakerShown"`
}

var viewAgendaItemKeys = []string{"icon", "title", "isSpeakerShown"}

func (v ViewAgendaItem) MarshalJSON() ([]byte, error) {
	raw, err := v.RawAgendaItem.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return overlay(raw, viewAgendaItemFields{
		Icon:           v.Icon,
		Title:          v.Title,
		IsSpeakerShown: v.IsSpeakerShown,
	})
}

func (v *ViewAgendaItem) UnmarshalJSON(data []byte) error {
	var fields viewAgendaItemFields
	rest, err := splitFields(data, &fields, viewAgendaItemKeys)
	if err != nil {
		return err
	}
	restData, err := json.Marshal(rest)
	if err != nil {
		return err
	}
	var raw RawAgendaItem
	if err = raw.UnmarshalJSON(restData); err != nil {
		return err
	}
	*v = ViewAgendaItem{
		RawAgendaItem:  raw,
		Icon:           fields.Icon,
		Title:          fields.Title,
		IsSpeakerShown: fields.IsSpeakerShown,
	}
	return nil
}
