package normalization

import "strings"

// Name приводит ФИО к титульному регистру: каждая часть имени с заглавной
// буквы, двойные фамилии сохраняют дефис
func (n *Normalizer) Name(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,.;:")
	if s == "" {
		return ""
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = n.titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord капитализирует слово, каждую часть дефисного слова отдельно
func (n *Normalizer) titleWord(w string) string {
	if strings.Contains(w, "-") {
		parts := strings.Split(w, "-")
		for i, p := range parts {
			parts[i] = n.titleCaser.String(strings.ToLower(p))
		}
		return strings.Join(parts, "-")
	}
	return n.titleCaser.String(strings.ToLower(w))
}

// Citizenship приводит гражданство к титульному регистру
func (n *Normalizer) Citizenship(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,.;:")
	if s == "" {
		return ""
	}
	up := strings.ToUpper(s)
	if up == "РФ" || up == "RF" {
		return "РФ"
	}
	return n.titleCaser.String(strings.ToLower(s))
}
