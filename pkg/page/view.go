package page

import (
	"github.com/pershin-daniil/MeetupPage/pkg/agenda"
	"github.com/pershin-daniil/MeetupPage/pkg/dates"
	"github.com/pershin-daniil/MeetupPage/pkg/meetupapi"
	"github.com/pershin-daniil/MeetupPage/pkg/models"
)

// BuildView derives the presentation model. A nil raw meetup yields a view
// with an empty agenda and nothing else set.
func BuildView(raw *models.RawMeetup, apiURL string, formatter dates.Formatter) models.ViewMeetup {
	if raw == nil {
		return models.ViewMeetup{Agenda: []models.ViewAgendaItem{}}
	}
	view := models.ViewMeetup{
		RawMeetup: *raw,
		Cover:     meetupapi.CoverLink(apiURL, raw.ImageID.String()),
		Agenda:    agenda.Normalize(raw.Agenda),
	}
	if !raw.Date.IsZero() {
		view.Date = formatter.Format(raw.Date.Time)
		view.DateOnlyString = dates.DateOnlyString(raw.Date.Time)
	}
	return view
}
