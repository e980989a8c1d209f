package normalization

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	deptCodeRe   = regexp.MustCompile(`\d{3}[\s\-]?\d{3}`)
	issuedDateRe = regexp.MustCompile(`\d{2}[.\-]\d{2}[.\-]\d{2,4}\s*(?:г\.?|года?)?`)
	yearSuffixRe = regexp.MustCompile(`\s*(?:г\.?|года?)\s*$`)
)

// Passport приводит серию и номер паспорта к виду NN NN NNNNNN.
// На входе ожидается 10 цифр в любой группировке
func (n *Normalizer) Passport(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) != 10 {
		return ""
	}
	return fmt.Sprintf("%s %s %s", digits[0:2], digits[2:4], digits[4:10])
}

// License приводит номер водительского удостоверения к виду NN NN NNNNNN
func (n *Normalizer) License(raw string) string {
	return n.Passport(raw)
}

// DeptCode приводит код подразделения к виду NNN-NNN
func (n *Normalizer) DeptCode(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) != 6 {
		return ""
	}
	return digits[0:3] + "-" + digits[3:6]
}

// Date приводит дату к виду DD.MM.YYYY. Разделители-дефисы заменяются
// точками, двузначный год разворачивается до четырех цифр
func (n *Normalizer) Date(raw string) string {
	s := strings.TrimSpace(yearSuffixRe.ReplaceAllString(raw, ""))
	s = strings.ReplaceAll(s, "-", ".")
	s = strings.ReplaceAll(s, "/", ".")
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return ""
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if len(year) == 2 {
		// годы 00-29 относим к текущему веку, остальные к прошлому
		if year <= "29" {
			year = "20" + year
		} else {
			year = "19" + year
		}
	}
	if len(day) != 2 || len(month) != 2 || len(year) != 4 {
		return ""
	}
	if onlyDigits(day+month+year) != day+month+year {
		return ""
	}
	return day + "." + month + "." + year
}

// IssuedBy очищает наименование органа, выдавшего паспорт: убирает
// затесавшиеся даты выдачи и код подразделения, хвостовое "г.",
// схлопывает пробелы. Слишком короткий остаток отбрасывается
func (n *Normalizer) IssuedBy(raw string) string {
	s := issuedDateRe.ReplaceAllString(raw, " ")
	s = strings.ReplaceAll(s, "к/п", " ")
	s = strings.ReplaceAll(s, "код подразделения", " ")
	s = deptCodeRe.ReplaceAllString(s, " ")
	s = strings.Trim(collapseSpaces(s), " ,.;:")
	if len([]rune(s)) < 5 {
		return ""
	}
	return s
}
