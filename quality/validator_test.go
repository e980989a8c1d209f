package quality

import (
	"testing"
	"time"

	"cargoparser/dictionaries"
)

func newTestValidator() *Validator {
	v := New(dictionaries.Default(), 16, 100)
	v.nowFunc = func() time.Time {
		return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return v
}

func TestDate(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"обычная дата", "15.03.1985", false},
		{"29 февраля високосного года", "29.02.2024", false},
		{"31 апреля", "31.04.2024", true},
		{"29 февраля невисокосного года", "29.02.2023", true},
		{"нулевой день", "00.05.2024", true},
		{"тринадцатый месяц", "15.13.2024", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Date(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Date(%q) err = %v, ожидалась ошибка: %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestBirthDate(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"сорок лет", "15.03.1985", false},
		{"ровно шестнадцать", "01.06.2010", false},
		{"пятнадцать лет", "02.06.2010", true},
		{"сто один год", "01.05.1925", true},
		{"несуществующая дата", "31.04.1985", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.BirthDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("BirthDate(%q) err = %v, ожидалась ошибка: %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestPastDate(t *testing.T) {
	v := newTestValidator()
	if err := v.PastDate("15.03.2020"); err != nil {
		t.Errorf("PastDate для прошедшей даты: %v", err)
	}
	if err := v.PastDate("15.03.2030"); err == nil {
		t.Error("PastDate пропустил будущую дату")
	}
}

func TestDocumentShapes(t *testing.T) {
	v := newTestValidator()
	if err := v.Phone("+7 (926) 123-45-67"); err != nil {
		t.Errorf("Phone: %v", err)
	}
	if err := v.Phone("89261234567"); err == nil {
		t.Error("Phone пропустил ненормализованный номер")
	}
	if err := v.Phone("+7 (495) 123-45-67"); err == nil {
		t.Error("Phone пропустил городской номер")
	}
	if err := v.Passport("46 16 123456"); err != nil {
		t.Errorf("Passport: %v", err)
	}
	if err := v.Passport("4616123456"); err == nil {
		t.Error("Passport пропустил слитную запись")
	}
	if err := v.DeptCode("770-001"); err != nil {
		t.Errorf("DeptCode: %v", err)
	}
}

func TestPlateShapes(t *testing.T) {
	v := newTestValidator()
	valid := []string{"В 123 РО 750", "А 123 В 77", "1234 АВ 77", "АВ 1234 77"}
	for _, p := range valid {
		if err := v.VehiclePlate(p); err != nil {
			t.Errorf("VehiclePlate(%q): %v", p, err)
		}
	}
	invalid := []string{"В123РО750", "Я 123 ЯЯ 77", "В 12 РО 750"}
	for _, p := range invalid {
		if err := v.VehiclePlate(p); err == nil {
			t.Errorf("VehiclePlate(%q) пропущен", p)
		}
	}
	if err := v.TrailerPlate("АУ 0007 36"); err != nil {
		t.Errorf("TrailerPlate: %v", err)
	}
	if err := v.TrailerPlate("В 123 РО 750"); err == nil {
		t.Error("TrailerPlate принял автомобильный номер")
	}
}

func TestINN(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name    string
		inn     string
		orgType string
		wantErr bool
	}{
		{"организация 10 цифр", "5022001234", "ООО", false},
		{"ИП 12 цифр", "502201234567", "ИП", false},
		{"ИП с 10 цифрами", "5022001234", "ИП", true},
		{"организация с 12 цифрами", "502201234567", "ООО", true},
		{"11 цифр", "50220123456", "", true},
		{"без формы любая допустимая длина", "502201234567", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.INNForOrgType(tt.inn, tt.orgType)
			if (err != nil) != tt.wantErr {
				t.Errorf("INNForOrgType(%q, %q) err = %v, ожидалась ошибка: %v", tt.inn, tt.orgType, err, tt.wantErr)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	v := newTestValidator()
	// 7707083893 это ИНН с верной контрольной цифрой
	if w := v.CheckINNChecksum("7707083893"); w != "" {
		t.Errorf("верный ИНН получил предупреждение: %s", w)
	}
	if w := v.CheckINNChecksum("7707083894"); w == "" {
		t.Error("ИНН с неверной контрольной цифрой прошел без предупреждения")
	}
	if w := v.CheckPassportRegion("46 16 123456"); w != "" {
		t.Errorf("код региона 46 получил предупреждение: %s", w)
	}
	if w := v.CheckPassportRegion("99 16 123456"); w == "" {
		t.Error("несуществующая серия прошла без предупреждения")
	}
	if w := v.CheckPlateRegion("В 123 РО 750"); w != "" {
		t.Errorf("регион 750 получил предупреждение: %s", w)
	}
	if w := v.CheckPlateRegion("В 123 РО 321"); w == "" {
		t.Error("несуществующий регион прошел без предупреждения")
	}
}
