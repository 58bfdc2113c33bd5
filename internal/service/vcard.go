package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/solware/solware-id/internal/domain"
)

// BuildVCard converts p to a vCard 3.0 card with text in lang.
func BuildVCard(p domain.Profile, lang domain.Language) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "3.0")
	card.SetValue(vcard.FieldFormattedName, p.Name)

	given, family := splitName(p.Name)
	card.AddName(&vcard.Name{GivenName: given, FamilyName: family})

	if org := p.Company.In(lang); org != "" {
		card.SetValue(vcard.FieldOrganization, org)
	}
	if title := p.Title.In(lang); title != "" {
		card.SetValue(vcard.FieldTitle, title)
	}

	card.Add(vcard.FieldTelephone, &vcard.Field{
		Value:  p.Phone,
		Params: vcard.Params{vcard.ParamType: {vcard.TypeCell, "voice"}},
	})
	if p.Email != "" {
		card.Add(vcard.FieldEmail, &vcard.Field{
			Value:  p.Email,
			Params: vcard.Params{vcard.ParamType: {"internet", vcard.TypeWork}},
		})
	}
	if href, ok := ActionHref(p, domain.ChannelWebsite); ok {
		card.Add(vcard.FieldURL, &vcard.Field{Value: href, Params: vcard.Params{vcard.ParamType: {vcard.TypeWork}}})
	}
	if href, ok := ActionHref(p, domain.ChannelLinkedIn); ok {
		card.Add(vcard.FieldURL, &vcard.Field{Value: href})
	}
	if p.Photo != "" {
		card.Add(vcard.FieldPhoto, &vcard.Field{Value: p.Photo, Params: vcard.Params{vcard.ParamValue: {"uri"}}})
	}

	return card
}

// WriteVCard encodes the vCard of p to w.
func WriteVCard(w io.Writer, p domain.Profile, lang domain.Language) error {
	if err := vcard.NewEncoder(w).Encode(BuildVCard(p, lang)); err != nil {
		return fmt.Errorf("encode vcard: %w", err)
	}
	return nil
}

// splitName treats the last word as the family name.
func splitName(name string) (given, family string) {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	}
	return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
}
