package normalization

import (
	"regexp"
	"strings"
)

// Канонические формы госномеров. Буквы только из разрешенного ГОСТом
// набора, совпадающего по начертанию с латиницей.
var (
	plateStandardRe = regexp.MustCompile(`^([АВЕКМНОРСТУХ])(\d{3})([АВЕКМНОРСТУХ]{2})(\d{2,3})$`)
	plateYellowRe   = regexp.MustCompile(`^([АВЕКМНОРСТУХ])(\d{3})([АВЕКМНОРСТУХ])(\d{2,3})$`)
	plateMotoRe     = regexp.MustCompile(`^(\d{4})([АВЕКМНОРСТУХ]{2})(\d{2,3})$`)
	plateLegacyRe   = regexp.MustCompile(`^([АВЕКМНОРСТУХ]{2})(\d{4})(\d{2,3})$`)
)

// latinToCyrillicPlate переводит латинские омоглифы номерных букв в кириллицу
var latinToCyrillicPlate = map[rune]rune{
	'A': 'А', 'B': 'В', 'E': 'Е', 'K': 'К', 'M': 'М', 'H': 'Н',
	'O': 'О', 'P': 'Р', 'C': 'С', 'T': 'Т', 'Y': 'У', 'X': 'Х',
}

// stripPlate убирает разделители и переводит номер в верхний кириллический регистр
func stripPlate(raw string) string {
	s := strings.ToUpper(raw)
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '-' || r == '_' || r == '.' {
			continue
		}
		if c, ok := latinToCyrillicPlate[r]; ok {
			r = c
		}
		b.WriteRune(r)
	}
	return b.String()
}

// VehiclePlate приводит номер автомобиля к канонической записи с пробелами:
// В 123 РО 750 для стандартного, В 123 Р 750 для желтого, 1234 АВ 77 для
// мотоциклетного, АВ 1234 77 для номера старого образца
func (n *Normalizer) VehiclePlate(raw string) string {
	s := stripPlate(raw)
	if m := plateStandardRe.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[2] + " " + m[3] + " " + m[4]
	}
	if m := plateYellowRe.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[2] + " " + m[3] + " " + m[4]
	}
	if m := plateMotoRe.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[2] + " " + m[3]
	}
	if m := plateLegacyRe.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[2] + " " + m[3]
	}
	return ""
}

// TrailerPlate приводит номер прицепа к виду АВ 1234 77
func (n *Normalizer) TrailerPlate(raw string) string {
	s := stripPlate(raw)
	m := plateLegacyRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1] + " " + m[2] + " " + m[3]
}
