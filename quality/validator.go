// Package quality проверяет нормализованные значения полей. Жесткие
// проверки возвращают ошибку и переводят поле в статус "невалидно",
// мягкие возвращают текст предупреждения, не меняя статус.
package quality

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cargoparser/dictionaries"
)

const dateLayout = "02.01.2006"

var (
	phoneShapeRe    = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)
	documentShapeRe = regexp.MustCompile(`^\d{2} \d{2} \d{6}$`)
	plateShapeRe    = regexp.MustCompile(`^(?:[АВЕКМНОРСТУХ] \d{3} [АВЕКМНОРСТУХ]{1,2} \d{2,3}|\d{4} [АВЕКМНОРСТУХ]{2} \d{2,3}|[АВЕКМНОРСТУХ]{2} \d{4} \d{2,3})$`)
	trailerShapeRe  = regexp.MustCompile(`^[АВЕКМНОРСТУХ]{2} \d{4} \d{2,3}$`)
	deptCodeShapeRe = regexp.MustCompile(`^\d{3}-\d{3}$`)
)

// Validator проверяет значения полей. Возрастные границы задаются при
// создании; nowFunc подменяется в тестах
type Validator struct {
	dicts   *dictionaries.Dictionaries
	minAge  int
	maxAge  int
	nowFunc func() time.Time
}

// New создает валидатор с границами возраста водителя
func New(dicts *dictionaries.Dictionaries, minAge, maxAge int) *Validator {
	return &Validator{
		dicts:   dicts,
		minAge:  minAge,
		maxAge:  maxAge,
		nowFunc: time.Now,
	}
}

// Date проверяет, что значение является существующей календарной датой
func (v *Validator) Date(value string) error {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("дата %q не существует в календаре", value)
	}
	if parsed.Format(dateLayout) != value {
		return fmt.Errorf("дата %q не существует в календаре", value)
	}
	return nil
}

// BirthDate проверяет дату рождения и попадание возраста в допустимый диапазон
func (v *Validator) BirthDate(value string) error {
	if err := v.Date(value); err != nil {
		return err
	}
	born, _ := time.Parse(dateLayout, value)
	age := yearsBetween(born, v.nowFunc())
	if age < v.minAge || age > v.maxAge {
		return fmt.Errorf("возраст %d лет вне диапазона %d-%d", age, v.minAge, v.maxAge)
	}
	return nil
}

// PastDate проверяет, что дата существует и не находится в будущем
func (v *Validator) PastDate(value string) error {
	if err := v.Date(value); err != nil {
		return err
	}
	parsed, _ := time.Parse(dateLayout, value)
	if parsed.After(v.nowFunc()) {
		return fmt.Errorf("дата %q еще не наступила", value)
	}
	return nil
}

// Phone проверяет канонический вид мобильного номера
func (v *Validator) Phone(value string) error {
	if !phoneShapeRe.MatchString(value) {
		return fmt.Errorf("номер телефона %q не соответствует формату +7 (XXX) XXX-XX-XX", value)
	}
	if value[4] != '9' {
		return fmt.Errorf("номер %q не мобильный: код оператора должен начинаться с 9", value)
	}
	return nil
}

// Passport проверяет канонический вид серии и номера паспорта
func (v *Validator) Passport(value string) error {
	if !documentShapeRe.MatchString(value) {
		return fmt.Errorf("паспорт %q не соответствует формату NN NN NNNNNN", value)
	}
	return nil
}

// License проверяет канонический вид номера водительского удостоверения
func (v *Validator) License(value string) error {
	if !documentShapeRe.MatchString(value) {
		return fmt.Errorf("ВУ %q не соответствует формату NN NN NNNNNN", value)
	}
	return nil
}

// DeptCode проверяет код подразделения
func (v *Validator) DeptCode(value string) error {
	if !deptCodeShapeRe.MatchString(value) {
		return fmt.Errorf("код подразделения %q не соответствует формату NNN-NNN", value)
	}
	return nil
}

// VehiclePlate проверяет канонический вид госномера автомобиля
func (v *Validator) VehiclePlate(value string) error {
	if !plateShapeRe.MatchString(value) {
		return fmt.Errorf("госномер %q не соответствует ни одному из форматов ГОСТ", value)
	}
	return nil
}

// TrailerPlate проверяет канонический вид номера прицепа
func (v *Validator) TrailerPlate(value string) error {
	if !trailerShapeRe.MatchString(value) {
		return fmt.Errorf("номер прицепа %q не соответствует формату ЛЛ NNNN RR", value)
	}
	return nil
}

// INN проверяет длину ИНН: 10 цифр для организации, 12 для ИП
func (v *Validator) INN(value string) error {
	if len(value) != 10 && len(value) != 12 {
		return fmt.Errorf("ИНН %q должен содержать 10 или 12 цифр", value)
	}
	if strings.Trim(value, "0123456789") != "" {
		return fmt.Errorf("ИНН %q содержит не только цифры", value)
	}
	return nil
}

// INNForOrgType проверяет соответствие длины ИНН организационной форме
func (v *Validator) INNForOrgType(value, orgType string) error {
	if err := v.INN(value); err != nil {
		return err
	}
	switch orgType {
	case "ИП":
		if len(value) != 12 {
			return fmt.Errorf("ИНН ИП должен содержать 12 цифр, получено %d", len(value))
		}
	case "":
	default:
		if len(value) != 10 {
			return fmt.Errorf("ИНН организации должен содержать 10 цифр, получено %d", len(value))
		}
	}
	return nil
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	return years
}
