package login

import "sort"

// Localizer is the translation catalog and language registry.
type Localizer interface {
	Translate(key string) string
	Language() string
	Languages() map[string]string
	SetLanguage(code string) error
}

type Language struct {
	Code string
	Name string
}

// Languages lists the registry ordered by code for the language picker.
func Languages(l Localizer) []Language {
	registry := l.Languages()
	list := make([]Language, 0, len(registry))
	for code, name := range registry {
		list = append(list, Language{Code: code, Name: name})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}
