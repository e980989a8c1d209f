package extractors

import (
	"regexp"
	"strings"
)

// Pattern один текстовый шаблон поля. Группы захвата объединяются пробелом
// в сырое значение кандидата. Шаблоны с line=true ищут по исходному тексту
// с переводами строк (якорь ^ в многострочном режиме), остальные по
// "плоскому" тексту, где переводы строк заменены пробелами.
type Pattern struct {
	re     *regexp.Regexp
	groups []int
	line   bool
}

// NewPattern компилирует шаблон для плоского текста. Некорректное
// выражение означает дефект таблицы шаблонов и валит процесс на старте.
func NewPattern(expr string, groups ...int) Pattern {
	if len(groups) == 0 {
		groups = []int{1}
	}
	return Pattern{re: regexp.MustCompile(expr), groups: groups}
}

// NewLinePattern компилирует шаблон, привязанный к началу строки
func NewLinePattern(expr string, groups ...int) Pattern {
	p := NewPattern(expr, groups...)
	p.line = true
	return p
}

// ExtractCandidates прогоняет все шаблоны поля по сообщению и возвращает
// всех кандидатов. Порядок шаблонов задаёт приоритет: чем меньше индекс,
// тем надёжнее шаблон. Функция чистая: ни сообщение, ни спецификация не
// изменяются.
func ExtractCandidates(flat, original string, spec FieldSpec) []Candidate {
	var out []Candidate
	for prio, p := range spec.Patterns {
		text := flat
		if p.line {
			text = original
		}
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			raw := joinGroups(text, m, p.groups)
			if raw == "" {
				continue
			}
			start, end := groupSpan(m, p.groups)
			out = append(out, Candidate{
				Field:    spec.Field,
				Raw:      raw,
				Start:    start,
				End:      end,
				Priority: prio,
			})
		}
	}
	return out
}

func joinGroups(text string, m []int, groups []int) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		lo, hi := m[2*g], m[2*g+1]
		if lo < 0 || hi < 0 {
			continue
		}
		part := strings.TrimSpace(text[lo:hi])
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func groupSpan(m []int, groups []int) (int, int) {
	start, end := -1, -1
	for _, g := range groups {
		lo, hi := m[2*g], m[2*g+1]
		if lo < 0 {
			continue
		}
		if start < 0 || lo < start {
			start = lo
		}
		if hi > end {
			end = hi
		}
	}
	return start, end
}
