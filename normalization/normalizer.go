// Package normalization приводит зафиксированные значения полей к
// каноническому текстовому представлению. Все операции идемпотентны:
// повторная нормализация уже канонического значения возвращает его же.
package normalization

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cargoparser/dictionaries"
)

// Normalizer нормализатор значений полей. После создания не изменяется и
// безопасен для одновременного использования из нескольких горутин.
type Normalizer struct {
	dicts      *dictionaries.Dictionaries
	titleCaser cases.Caser
	cityStems  map[string]string
}

// New создает нормализатор над переданными справочниками
func New(dicts *dictionaries.Dictionaries) *Normalizer {
	n := &Normalizer{
		dicts:      dicts,
		titleCaser: cases.Title(language.Russian),
		cityStems:  buildCityStems(dicts),
	}
	return n
}

// collapseSpaces схлопывает повторные пробелы
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
