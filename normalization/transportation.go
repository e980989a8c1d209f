package normalization

import (
	"regexp"
	"strings"
)

var routeSplitRe = regexp.MustCompile(`\s*(?:-|–|>|->|=>)\s*`)

// INN оставляет от захвата только цифры
func (n *Normalizer) INN(raw string) string {
	return onlyDigits(raw)
}

// Price приводит стоимость перевозки к числу с пометкой валюты
func (n *Normalizer) Price(raw string) string {
	digits := onlyDigits(raw)
	if digits == "" {
		return ""
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return ""
	}
	return digits + " руб."
}

// Payment приводит условия оплаты к одной из принятых формулировок
func (n *Normalizer) Payment(raw string) string {
	s := strings.ToLower(strings.Trim(collapseSpaces(raw), " ,.;:"))
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "без ндс"):
		return "без НДС"
	case strings.Contains(s, "ндс"):
		return "с НДС"
	case strings.Contains(s, "нал") && !strings.Contains(s, "безнал"):
		return "наличные"
	case strings.Contains(s, "безнал") || strings.Contains(s, "перечисл") || strings.Contains(s, "на карту") || strings.Contains(s, "на счет"):
		return "безналичные"
	}
	return s
}

// Route приводит маршрут к виду "Город1 - Город2", каждый пункт в
// именительном падеже
func (n *Normalizer) Route(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,.;:")
	if s == "" {
		return ""
	}
	points := routeSplitRe.Split(s, -1)
	out := make([]string, 0, len(points))
	for _, p := range points {
		p = strings.Trim(p, " ,.")
		if p == "" {
			continue
		}
		out = append(out, n.City(p))
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, " - ")
}

// Note очищает примечание от лишних пробелов
func (n *Normalizer) Note(raw string) string {
	return strings.Trim(collapseSpaces(raw), " ,;")
}
