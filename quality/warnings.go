package quality

import (
	"fmt"
	"strings"
)

// Мягкие проверки: несоответствие не делает поле невалидным, а только
// добавляет предупреждение к результату разбора.

// CheckINNChecksum сверяет контрольные цифры ИНН. Возвращает текст
// предупреждения или пустую строку
func (v *Validator) CheckINNChecksum(value string) string {
	switch len(value) {
	case 10:
		if !innChecksum10(value) {
			return fmt.Sprintf("контрольная цифра ИНН %s не сходится", value)
		}
	case 12:
		if !innChecksum12(value) {
			return fmt.Sprintf("контрольные цифры ИНН %s не сходятся", value)
		}
	}
	return ""
}

// CheckPassportRegion сверяет первые две цифры серии паспорта со
// справочником кодов регионов
func (v *Validator) CheckPassportRegion(value string) string {
	if len(value) < 2 {
		return ""
	}
	region := value[0:2]
	if !v.dicts.PassportRegions[region] {
		return fmt.Sprintf("неизвестный код региона %s в серии паспорта", region)
	}
	return ""
}

// CheckPlateRegion сверяет код региона госномера со справочником
func (v *Validator) CheckPlateRegion(value string) string {
	idx := strings.LastIndex(value, " ")
	if idx < 0 {
		return ""
	}
	region := value[idx+1:]
	if !v.dicts.PlateRegions[region] {
		return fmt.Sprintf("неизвестный код региона %s в госномере", region)
	}
	return ""
}

// innChecksum10 проверяет контрольную цифру 10-значного ИНН
func innChecksum10(inn string) bool {
	coefficients := []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(inn[i]-'0') * coefficients[i]
	}
	check := sum % 11
	if check == 10 {
		check = 0
	}
	return check == int(inn[9]-'0')
}

// innChecksum12 проверяет обе контрольные цифры 12-значного ИНН
func innChecksum12(inn string) bool {
	coefficients1 := []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	sum1 := 0
	for i := 0; i < 10; i++ {
		sum1 += int(inn[i]-'0') * coefficients1[i]
	}
	check1 := sum1 % 11
	if check1 == 10 {
		check1 = 0
	}
	if check1 != int(inn[10]-'0') {
		return false
	}

	coefficients2 := []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	sum2 := 0
	for i := 0; i < 11; i++ {
		sum2 += int(inn[i]-'0') * coefficients2[i]
	}
	check2 := sum2 % 11
	if check2 == 10 {
		check2 = 0
	}
	return check2 == int(inn[11]-'0')
}
