package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/pershin-daniil/MeetupPage/pkg/models"
)

var meetupTemplate = template.Must(template.New("meetup").Parse(`{{ .Title }}
{{ if .DateOnlyString }}{{ .Date }} ({{ .DateOnlyString }}){{ end }}{{ with .Text "place" }}, {{ . }}{{ end }}
{{ if .Cover }}Cover: {{ .Cover }}
{{ end }}{{ with .Text "description" }}
{{ . }}
{{ end }}
Agenda:
{{- range .Agenda }}
  {{ .Text "startsAt" }}{{ with .Text "endsAt" }}-{{ . }}{{ end }} [{{ if .Icon }}{{ .Icon }}{{ else }}-{{ end }}] {{ .Title }}
{{- if .IsSpeakerShown }}{{ $language := .Text "language" }}{{ with .Text "speaker" }}
      {{ . }}{{ with $language }} ({{ . }}){{ end }}{{ end }}{{ end }}
{{- else }}
  (empty)
{{- end }}
`))

// Meetup writes a plain-text version of the meetup page.
func Meetup(w io.Writer, meetup models.ViewMeetup) error {
	if err := meetupTemplate.Execute(w, meetup); err != nil {
		return fmt.Errorf("err rendering meetup: %w", err)
	}
	return nil
}

var counterTemplate = template.Must(template.New("counter").Parse("Count: {{ . }}\n"))

func Counter(w io.Writer, count int) error {
	if err := counterTemplate.Execute(w, count); err != nil {
		return fmt.Errorf("err rendering counter: %w", err)
	}
	return nil
}
