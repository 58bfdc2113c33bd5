package service_test

import (
	"testing"

	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/service"
)

func TestContactActions_AllChannels(t *testing.T) {
	actions := service.ContactActions(luisProfile(), domain.LanguageEN)

	want := []struct {
		channel domain.Channel
		href    string
		event   string
	}{
		{domain.ChannelEmail, "mailto:luismccoach@gmail.com", domain.EventClickEmail},
		{domain.ChannelWhatsApp, "https://wa.me/584127224007", domain.EventClickWhatsApp},
		{domain.ChannelLinkedIn, "https://linkedin.com/in/luis-mejia-bb590a223", domain.EventClickSocial},
		{domain.ChannelWebsite, "https://solware.agency", domain.EventClickSocial},
	}
	if len(actions) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(actions))
	}
	for i, w := range want {
		a := actions[i]
		if a.Channel != w.channel || a.Href != w.href || a.EventName != w.event {
			t.Fatalf("action %d: got %+v", i, a)
		}
	}
	if actions[0].External {
		t.Fatal("email should not open a new tab")
	}
	if !actions[1].External {
		t.Fatal("whatsapp should open a new tab")
	}
	if actions[3].Label != "Solware Agency" {
		t.Fatalf("website label should be the company, got %q", actions[3].Label)
	}
}

func TestContactActions_OmitsMissingChannels(t *testing.T) {
	p := eugenioProfile() // no linkedin, no website
	actions := service.ContactActions(p, domain.LanguageES)

	if len(actions) != 2 {
		t.Fatalf("expected email and whatsapp only, got %+v", actions)
	}
	for _, a := range actions {
		if a.Channel == domain.ChannelLinkedIn || a.Channel == domain.ChannelWebsite {
			t.Fatalf("unexpected channel %q", a.Channel)
		}
	}
	if actions[0].Label != "Correo" {
		t.Fatalf("expected spanish label, got %q", actions[0].Label)
	}
}

func TestActionFor_Schedule(t *testing.T) {
	a, ok := service.ActionFor(eugenioProfile(), domain.ChannelSchedule, domain.LanguageEN)
	if !ok {
		t.Fatal("expected schedule action")
	}
	if a.Href != "https://calendar.example.com/eugenio" || a.EventName != domain.EventClickSchedule {
		t.Fatalf("unexpected schedule action: %+v", a)
	}

	if _, ok := service.ActionFor(luisProfile(), domain.ChannelSchedule, domain.LanguageEN); ok {
		t.Fatal("luis has no schedule link")
	}
}

func TestTelHref(t *testing.T) {
	p := eugenioProfile()
	if got := service.TelHref(p); got != "tel:+584142323332" {
		t.Fatalf("unexpected tel href %q", got)
	}
}

func TestVCardPath(t *testing.T) {
	if got := service.VCardPath("luis-mejia"); got != "/vcf/luis-mejia.vcf" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Luis Mejía":            "LM",
		"eugenio andreone":      "EA",
		"Ana":                   "A",
		"María José de la Cruz": "MJ",
		"":                      "",
		"Ñandú Österreich":      "ÑÖ",
	}
	for name, want := range tests {
		if got := service.Initials(name); got != want {
			t.Errorf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestTrackedHref(t *testing.T) {
	if got := service.TrackedHref("luis-mejia", domain.ChannelWhatsApp); got != "/go/luis-mejia/whatsapp" {
		t.Fatalf("unexpected tracked href %q", got)
	}
}
