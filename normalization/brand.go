package normalization

import (
	"regexp"
	"strings"

	"cargoparser/dictionaries"
)

// brandNoiseRe срезает сопровождающие слова, попавшие в захват вместе с маркой
var brandNoiseRe = regexp.MustCompile(`(?i)(?:марка|машина|автомобиль|авто|а/м|тягач|т/с|тс|грузовик|фура|прицеп|полуприцеп|п/п|п/прицеп|рефрижератор|реф|тент)\.?`)

// VehicleBrand приводит марку автомобиля к канонической записи по
// справочнику. Незнакомая марка получает заглавную первую букву,
// кириллическое написание известной марки переводится в фирменное
func (n *Normalizer) VehicleBrand(raw string) string {
	return n.brand(raw, n.dicts.CarBrands)
}

// TrailerBrand приводит марку прицепа к канонической записи
func (n *Normalizer) TrailerBrand(raw string) string {
	return n.brand(raw, n.dicts.TrailerBrands)
}

func (n *Normalizer) brand(raw string, dict map[string]string) string {
	s := brandNoiseRe.ReplaceAllString(raw, " ")
	s = strings.Trim(collapseSpaces(s), " ,.;:№")
	if s == "" {
		return ""
	}
	key := strings.ToLower(s)
	if canon, ok := dict[key]; ok {
		return canon
	}
	// кириллическое написание иностранной марки: вольво, скания, ман
	if translit := dictionaries.Transliterate(key); translit != key {
		if canon, ok := dict[translit]; ok {
			return canon
		}
	}
	return n.titleCaser.String(key)
}
