package agenda

import "github.com/pershin-daniil/MeetupPage/pkg/models"

// Titles are the default labels shown for items without an explicit title.
var Titles = map[models.AgendaItemType]string{
	models.AgendaItemRegistration: "Регистрация",
	models.AgendaItemOpening:      "Открытие",
	models.AgendaItemBreak:        "Перерыв",
	models.AgendaItemCoffee:       "Coffee Break",
	models.AgendaItemClosing:      "Закрытие",
	models.AgendaItemAfterparty:   "Afterparty",
	models.AgendaItemTalk:         "Доклад",
	models.AgendaItemOther:        "Другое",
}

// Icons maps item types to icon names from /assets/icons.
var Icons = map[models.AgendaItemType]string{
	models.AgendaItemRegistration: "key",
	models.AgendaItemOpening:      "cal-sm",
	models.AgendaItemTalk:         "tv",
	models.AgendaItemBreak:        "clock",
	models.AgendaItemCoffee:       "coffee",
	models.AgendaItemClosing:      "key",
	models.AgendaItemAfterparty:   "cal-sm",
	models.AgendaItemOther:        "cal-sm",
}

// Normalize returns one view item per raw item, in the same order.
// Unknown types get an empty icon and, without an explicit title, an empty title.
func Normalize(items []models.RawAgendaItem) []models.ViewAgendaItem {
	result := make([]models.ViewAgendaItem, 0, len(items))
	for _, item := range items {
		result = append(result, NormalizeItem(item))
	}
	return result
}

func NormalizeItem(item models.RawAgendaItem) models.ViewAgendaItem {
	title := item.Title
	if title == "" {
		title = Titles[item.Type]
	}
	return models.ViewAgendaItem{
		RawAgendaItem:  item,
		Icon:           Icons[item.Type],
		Title:          title,
		IsSpeakerShown: item.Type == models.AgendaItemTalk,
	}
}
