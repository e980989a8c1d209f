package normalization

import "fmt"

// Phone приводит телефонный номер к виду +7 (XXX) XXX-XX-XX.
// Ведущая 7 или 8 одиннадцатизначного номера отбрасывается. Цифры, не
// складывающиеся в десятизначный номер, возвращаются без форматирования:
// пригодность значения решает валидатор, а не нормализатор.
func (n *Normalizer) Phone(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) == 11 && (digits[0] == '7' || digits[0] == '8') {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return digits
	}
	return fmt.Sprintf("+7 (%s) %s-%s-%s", digits[0:3], digits[3:6], digits[6:8], digits[8:10])
}

// onlyDigits оставляет в строке только цифры
func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
