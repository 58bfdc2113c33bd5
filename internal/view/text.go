package view

import "github.com/solware/solware-id/internal/domain"

type text struct {
	SaveContact     string
	ScheduleMeeting string
	ToggleLanguage  string
	NotFound        string
	NotFoundDesc    string
	UnknownHost     string
}

var texts = map[domain.Language]text{
	domain.LanguageES: {
		SaveContact:     "Guardar contacto",
		ScheduleMeeting: "Agendar reunión",
		ToggleLanguage:  "Cambiar idioma a inglés",
		NotFound:        "Perfil no encontrado",
		NotFoundDesc:    "El perfil que buscas no existe o ha sido movido.",
		UnknownHost:     "No hay ningún perfil asociado al subdominio",
	},
	domain.LanguageEN: {
		SaveContact:     "Save contact",
		ScheduleMeeting: "Schedule meeting",
		ToggleLanguage:  "Switch language to Spanish",
		NotFound:        "Profile not found",
		NotFoundDesc:    "The profile you are looking for does not exist or has moved.",
		UnknownHost:     "There is no profile for the subdomain",
	},
}

func textFor(lang domain.Language) text {
	if t, ok := texts[lang]; ok {
		return t
	}
	return texts[domain.DefaultLanguage]
}
