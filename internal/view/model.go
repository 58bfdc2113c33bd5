package view

import (
	"fmt"
	"strings"

	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/service"
)

// CardID is the element patched by the language toggle.
const CardID = "card"

// CardData is everything the card template needs.
type CardData struct {
	Profile  domain.Profile
	Lang     domain.Language
	Actions  []service.Action
	Schedule *service.Action
}

// NewCardData builds the card view model for p in lang.
func NewCardData(p domain.Profile, lang domain.Language) CardData {
	d := CardData{
		Profile: p,
		Lang:    lang,
		Actions: service.ContactActions(p, lang),
	}
	if a, ok := service.ActionFor(p, domain.ChannelSchedule, lang); ok {
		a.Label = textFor(lang).ScheduleMeeting
		d.Schedule = &a
	}
	return d
}

// toggleAction is the datastar expression that fetches the card in the
// other language.
func (d CardData) toggleAction() string {
	return fmt.Sprintf("@get('/card/%s?lang=%s')", d.Profile.Slug, d.Lang.Other())
}

func (d CardData) toggleLabel() string {
	return strings.ToUpper(string(d.Lang.Other()))
}

func (d CardData) text() text {
	return textFor(d.Lang)
}
