package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/solware/solware-id/internal/domain"
)

// Action is one contact button on a card.
type Action struct {
	Channel   domain.Channel
	Href      string
	Label     string
	AriaLabel string
	EventName string
	External  bool // opens in a new tab
}

// ContactActions returns the icon actions available for p, in display order.
// Channels the profile lacks are omitted; scheduling is rendered separately.
func ContactActions(p domain.Profile, lang domain.Language) []Action {
	var actions []Action
	for _, c := range []domain.Channel{domain.ChannelEmail, domain.ChannelWhatsApp, domain.ChannelLinkedIn, domain.ChannelWebsite} {
		if a, ok := ActionFor(p, c, lang); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// ActionFor builds the action for a single channel.
func ActionFor(p domain.Profile, c domain.Channel, lang domain.Language) (Action, bool) {
	href, ok := ActionHref(p, c)
	if !ok {
		return Action{}, false
	}

	a := Action{Channel: c, Href: href, EventName: EventName(c), External: c != domain.ChannelEmail}
	en := lang == domain.LanguageEN
	switch c {
	case domain.ChannelEmail:
		a.Label = pick(en, "Email", "Correo")
		a.AriaLabel = pick(en, "Send an email to ", "Enviar correo electrónico a ") + p.Name
	case domain.ChannelWhatsApp:
		a.Label = "WhatsApp"
		a.AriaLabel = pick(en, "Send a WhatsApp message to ", "Enviar mensaje de WhatsApp a ") + p.Name
	case domain.ChannelLinkedIn:
		a.Label = "LinkedIn"
		a.AriaLabel = pick(en, "View the LinkedIn profile of ", "Ver perfil de LinkedIn de ") + p.Name
	case domain.ChannelWebsite:
		a.Label = p.Company.In(lang)
		a.AriaLabel = pick(en, "Visit the website of ", "Visitar sitio web de ") + p.Company.In(lang)
	case domain.ChannelSchedule:
		a.Label = pick(en, "Schedule a meeting", "Agendar reunión")
		a.AriaLabel = pick(en, "Schedule a meeting with ", "Programar una cita con ") + p.Name
	}
	return a, true
}

// ActionHref returns the target URL of channel c for p.
func ActionHref(p domain.Profile, c domain.Channel) (string, bool) {
	if !domain.HasChannel(p, c) {
		return "", false
	}
	switch c {
	case domain.ChannelEmail:
		return "mailto:" + p.Email, true
	case domain.ChannelWhatsApp:
		return "https://wa.me/" + p.WhatsApp, true
	case domain.ChannelLinkedIn:
		return "https://linkedin.com/in/" + p.LinkedIn, true
	case domain.ChannelWebsite:
		return "https://" + p.Website, true
	case domain.ChannelSchedule:
		return p.Calendly, true
	}
	return "", false
}

// EventName returns the analytics event recorded when c is clicked.
func EventName(c domain.Channel) string {
	switch c {
	case domain.ChannelEmail:
		return domain.EventClickEmail
	case domain.ChannelWhatsApp:
		return domain.EventClickWhatsApp
	case domain.ChannelLinkedIn, domain.ChannelWebsite:
		return domain.EventClickSocial
	case domain.ChannelSchedule:
		return domain.EventClickSchedule
	}
	return ""
}

// TelHref returns a tel: URL for the profile phone with whitespace removed.
func TelHref(p domain.Profile) string {
	return "tel:" + strings.Join(strings.Fields(p.Phone), "")
}

// VCardPath is where the contact file of slug is served.
func VCardPath(slug string) string {
	return fmt.Sprintf("/vcf/%s.vcf", slug)
}

// Initials returns up to two upper-case initials of name, shown when the
// photo fails to load.
func Initials(name string) string {
	var sb strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return sb.String()
}

func pick(en bool, english, spanish string) string {
	if en {
		return english
	}
	return spanish
}

// TrackedHref is the redirect route that records a click on c before
// sending the visitor to the channel target.
func TrackedHref(slug string, c domain.Channel) string {
	return fmt.Sprintf("/go/%s/%s", slug, c)
}
