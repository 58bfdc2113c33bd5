package handler

import (
	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/service"
)

type actionResponse struct {
	Channel domain.Channel `json:"channel"`
	Href    string         `json:"href"`
	Label   string         `json:"label"`
	Event   string         `json:"event"`
}

type profileResponse struct {
	domain.Profile
	Initials string           `json:"initials"`
	VCard    string           `json:"vcard"`
	Tel      string           `json:"tel"`
	Actions  []actionResponse `json:"actions"`
}

type statsResponse struct {
	Slug   string         `json:"slug"`
	Counts map[string]int `json:"counts"`
}

func newProfileResponse(p domain.Profile, lang domain.Language) profileResponse {
	resp := profileResponse{
		Profile:  p,
		Initials: service.Initials(p.Name),
		VCard:    service.VCardPath(p.Slug),
		Tel:      service.TelHref(p),
		Actions:  []actionResponse{},
	}
	for _, c := range domain.Channels {
		if a, ok := service.ActionFor(p, c, lang); ok {
			resp.Actions = append(resp.Actions, actionResponse{Channel: a.Channel, Href: a.Href, Label: a.Label, Event: a.EventName})
		}
	}
	return resp
}
