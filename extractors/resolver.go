package extractors

import (
	"sort"
	"strings"
)

// digitPrecedence порядок фиксации полей цифрового класса: шаблоны паспорта,
// ВУ и ИНН жёстче привязаны к ключевым словам и потому надёжнее телефона.
var digitPrecedence = []Field{
	FieldPassportNumber,
	FieldLicenseNumber,
	FieldINN,
	FieldPhone,
	FieldContactPhone,
}

// datePrecedence даты выдачи фиксируются раньше даты рождения: сообщение
// практически никогда не содержит одинаковые дату выдачи и дату рождения,
// поэтому совпавшее значение трактуется как "это не дата рождения".
var datePrecedence = []Field{
	FieldPassportIssueDate,
	FieldLicenseIssueDate,
	FieldHaulDate,
	FieldBirthDate,
}

// Resolve разрешает конфликты между кандидатами всех полей одного сообщения
// и возвращает по одному зафиксированному кандидату на поле. Отсутствие
// кандидата представляется nil-значением, ошибок функция не порождает.
func Resolve(specs []FieldSpec, candidates []Candidate) map[Field]*Candidate {
	byField := make(map[Field][]Candidate)
	for _, c := range candidates {
		byField[c.Field] = append(byField[c.Field], c)
	}
	// Лучший шаблон вперёд, при равенстве побеждает более раннее вхождение
	for f := range byField {
		list := byField[f]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Priority != list[j].Priority {
				return list[i].Priority < list[j].Priority
			}
			return list[i].Start < list[j].Start
		})
		byField[f] = list
	}

	classOf := make(map[Field]ConflictClass, len(specs))
	inProfile := make(map[Field]bool, len(specs))
	for _, s := range specs {
		classOf[s.Field] = s.Class
		inProfile[s.Field] = true
	}

	resolved := make(map[Field]*Candidate, len(specs))

	// Цифровой класс: зафиксированная последовательность цифр исключает
	// одинаковую последовательность у полей с меньшим приоритетом
	committedDigits := make(map[string]Field)
	for _, f := range digitPrecedence {
		if !inProfile[f] || classOf[f] != ClassDigits {
			continue
		}
		for i := range byField[f] {
			c := byField[f][i]
			digits := digitsOf(c.Raw)
			if digits == "" {
				continue
			}
			if _, taken := committedDigits[digits]; taken {
				continue
			}
			committedDigits[digits] = f
			resolved[f] = &c
			break
		}
	}

	// Класс дат: дата рождения не может совпадать с уже зафиксированной
	// датой выдачи
	committedDates := make(map[string]bool)
	for _, f := range datePrecedence {
		if !inProfile[f] || classOf[f] != ClassDate {
			continue
		}
		for i := range byField[f] {
			c := byField[f][i]
			date := canonicalDate(c.Raw)
			if f == FieldBirthDate && committedDates[date] {
				continue
			}
			committedDates[date] = true
			resolved[f] = &c
			break
		}
	}

	// Остальные поля: лучший из выживших кандидатов
	for _, s := range specs {
		if _, done := resolved[s.Field]; done {
			continue
		}
		if s.Class != ClassNone {
			// Поле конфликтного класса без выживших кандидатов
			continue
		}
		if list := byField[s.Field]; len(list) > 0 {
			c := list[0]
			resolved[s.Field] = &c
		}
	}

	return resolved
}

// digitsOf оставляет от строки только цифры
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalDate приводит дату к виду ДД.ММ.ГГГГ для сравнения
func canonicalDate(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "г.")
	s = strings.TrimSuffix(s, "г")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, "-", ".")
}
