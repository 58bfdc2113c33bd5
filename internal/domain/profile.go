package domain

// Language is a supported display language code.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"

	DefaultLanguage = LanguageES
)

// ParseLanguage returns the language for code, or DefaultLanguage when the
// code is empty or unsupported.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LanguageEN:
		return LanguageEN
	case LanguageES:
		return LanguageES
	}
	return DefaultLanguage
}

// Other returns the language the card toggle switches to.
func (l Language) Other() Language {
	if l == LanguageEN {
		return LanguageES
	}
	return LanguageEN
}

// Localized maps a language to its text.
type Localized map[Language]string

// In returns the text for lang, falling back to DefaultLanguage and then to
// any available translation.
func (l Localized) In(lang Language) string {
	if s, ok := l[lang]; ok && s != "" {
		return s
	}
	if s, ok := l[DefaultLanguage]; ok && s != "" {
		return s
	}
	for _, s := range l {
		if s != "" {
			return s
		}
	}
	return ""
}

// Profile is the static contact card of one person in the directory.
type Profile struct {
	Slug      string    `yaml:"slug" json:"slug" validate:"required,max=64"`
	Subdomain string    `yaml:"subdomain,omitempty" json:"subdomain,omitempty" validate:"omitempty,hostname_rfc1123,excludes=."`
	Name      string    `yaml:"name" json:"name" validate:"required"`
	Title     Localized `yaml:"title" json:"title" validate:"required,dive,keys,oneof=en es,endkeys,required"`
	Company   Localized `yaml:"company" json:"company" validate:"required,dive,keys,oneof=en es,endkeys,required"`
	Photo     string    `yaml:"photo" json:"photo" validate:"required,url"`
	Email     string    `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `yaml:"phone" json:"phone" validate:"required"`
	WhatsApp  string    `yaml:"whatsapp" json:"whatsapp" validate:"required,numeric"`
	LinkedIn  string    `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	Website   string    `yaml:"website,omitempty" json:"website,omitempty" validate:"omitempty,fqdn"`
	Calendly  string    `yaml:"calendly,omitempty" json:"calendly,omitempty" validate:"omitempty,url"`
}

// Channel is a way of reaching the person on a card.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelLinkedIn Channel = "linkedin"
	ChannelWebsite  Channel = "website"
	ChannelSchedule Channel = "schedule"
)

// Channels lists every channel in display order.
var Channels = []Channel{ChannelEmail, ChannelWhatsApp, ChannelLinkedIn, ChannelWebsite, ChannelSchedule}

// HasChannel reports whether the profile can be reached through c.
func HasChannel(p Profile, c Channel) bool {
	switch c {
	case ChannelEmail:
		return p.Email != ""
	case ChannelWhatsApp:
		return p.WhatsApp != ""
	case ChannelLinkedIn:
		return p.LinkedIn != ""
	case ChannelWebsite:
		return p.Website != ""
	case ChannelSchedule:
		return p.Calendly != ""
	}
	return false
}
