package normalization

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"

	"cargoparser/dictionaries"
)

// abbrevSpaceRe вставляет пробел после сокращений вида "г.Москва", "д.16"
var abbrevSpaceRe = regexp.MustCompile(`(г|д|ул|пр|пер|кв|обл|р-н|пос|с|дер)\.(\S)`)

// buildCityStems строит индекс основа-слова -> именительный падеж по
// справочнику городов. Основа считается русским стеммером Snowball,
// что позволяет узнавать падежные формы, отсутствующие в справочнике
func buildCityStems(dicts *dictionaries.Dictionaries) map[string]string {
	stems := make(map[string]string, len(dicts.CityNominative))
	for form, nominative := range dicts.CityNominative {
		stem, err := snowball.Stem(form, "russian", true)
		if err != nil {
			continue
		}
		stems[stem] = nominative
	}
	for _, nominative := range dicts.CompositeCities {
		stem, err := snowball.Stem(strings.ToLower(nominative), "russian", true)
		if err != nil {
			continue
		}
		stems[stem] = nominative
	}
	return stems
}

// cityNominative возвращает именительный падеж названия города или
// пустую строку, если форма не узнана
func (n *Normalizer) cityNominative(word string) string {
	key := strings.ToLower(strings.Trim(word, " ,.;:"))
	if key == "" {
		return ""
	}
	if canon, ok := n.dicts.CompositeCities[key]; ok {
		return canon
	}
	if canon, ok := n.dicts.CityNominative[key]; ok {
		return canon
	}
	stem, err := snowball.Stem(key, "russian", true)
	if err != nil {
		return ""
	}
	if canon, ok := n.cityStems[stem]; ok {
		return canon
	}
	return ""
}

// Address приводит адрес к единому виду: пробелы после сокращений,
// титульный регистр значимых слов, служебные слова строчными, город
// после "г." в именительном падеже
func (n *Normalizer) Address(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,;")
	if s == "" {
		return ""
	}
	s = abbrevSpaceRe.ReplaceAllString(s, "$1. $2")
	words := strings.Split(s, " ")
	for i, w := range words {
		trail := ""
		core := w
		if strings.HasSuffix(core, ",") {
			core = strings.TrimSuffix(core, ",")
			trail = ","
		}
		lower := strings.ToLower(core)
		switch {
		case n.dicts.SmallWords[lower]:
			words[i] = lower + trail
		case i > 0 && strings.EqualFold(words[i-1], "г.") || i == 0:
			// после "г." и в начале адреса ожидаем название города
			if canon := n.cityNominative(core); canon != "" {
				words[i] = canon + trail
				continue
			}
			words[i] = n.titleWord(core) + trail
		case hasLetter(core):
			words[i] = n.titleWord(core) + trail
		default:
			words[i] = core + trail
		}
	}
	return strings.Join(words, " ")
}

// City приводит отдельно взятое название города к именительному падежу
func (n *Normalizer) City(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,.;:")
	s = strings.TrimPrefix(s, "г. ")
	s = strings.TrimPrefix(s, "г ")
	if s == "" {
		return ""
	}
	if canon := n.cityNominative(s); canon != "" {
		return canon
	}
	return n.titleWord(s)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == 'ё' || r == 'Ё' {
			return true
		}
	}
	return false
}
