package parser

import (
	"sync"
	"testing"

	"cargoparser/dictionaries"
	"cargoparser/extractors"
)

func newTestParser() *Parser {
	return New(dictionaries.Default(), DefaultOptions())
}

const driverMessage = `Водитель: Иванов Иван Иванович
Дата рождения: 15.03.1985
Паспорт: 4616 123456 выдан ОУФМС России по Московской области 12.05.2010
Код подразделения: 500-110
ВУ: 9931 849596 от 20.06.2015
Тел: 89261234567
А/м Вольво В123РО750
Прицеп Шмитц АУ000736
Перевозчик: ООО Ромашка`

func TestParseDriver(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, driverMessage)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := map[extractors.Field]string{
		extractors.FieldDriverName:        "Иванов Иван Иванович",
		extractors.FieldBirthDate:         "15.03.1985",
		extractors.FieldPassportNumber:    "46 16 123456",
		extractors.FieldPassportIssueDate: "12.05.2010",
		extractors.FieldPassportDeptCode:  "500-110",
		extractors.FieldLicenseNumber:     "99 31 849596",
		extractors.FieldLicenseIssueDate:  "20.06.2015",
		extractors.FieldPhone:             "+7 (926) 123-45-67",
		extractors.FieldVehicleBrand:      "Вольво",
		extractors.FieldVehiclePlate:      "В 123 РО 750",
		extractors.FieldTrailerBrand:      "Шмитц",
		extractors.FieldTrailerPlate:      "АУ 0007 36",
		extractors.FieldCarrier:           "ООО Ромашка",
	}
	for f, v := range want {
		if !r.Present(f) {
			t.Errorf("поле %s: статус %s, причина %q", f, r.Fields[f].Status, r.Fields[f].Reason)
			continue
		}
		if got := r.Value(f); got != v {
			t.Errorf("поле %s = %q, ожидалось %q", f, got, v)
		}
	}
}

// TestDigitDisambiguation одна и та же последовательность цифр не может
// достаться и номеру ВУ, и телефону
func TestDigitDisambiguation(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, "ВУ 9931849596")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := r.Value(extractors.FieldLicenseNumber); got != "99 31 849596" {
		t.Errorf("номер ВУ = %q", got)
	}
	if r.Fields[extractors.FieldPhone].Status != StatusAbsent {
		t.Errorf("телефон должен отсутствовать, получен %+v", r.Fields[extractors.FieldPhone])
	}
}

// TestDateDisambiguation дата, совпавшая с датой выдачи, не фиксируется
// как дата рождения
func TestDateDisambiguation(t *testing.T) {
	p := newTestParser()
	text := "Паспорт 4616 123456 выдан 12.05.2010, дата рождения 12.05.2010"
	r, err := p.Parse(KindDriver, text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := r.Value(extractors.FieldPassportIssueDate); got != "12.05.2010" {
		t.Errorf("дата выдачи = %q", got)
	}
	if r.Fields[extractors.FieldBirthDate].Status != StatusAbsent {
		t.Errorf("дата рождения должна отсутствовать, получена %+v", r.Fields[extractors.FieldBirthDate])
	}
}

func TestInvalidBirthDate(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, "Дата рождения: 31.04.1990")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := r.Fields[extractors.FieldBirthDate]
	if o.Status != StatusInvalid {
		t.Fatalf("статус = %s, ожидался invalid", o.Status)
	}
	if o.Reason == "" {
		t.Error("у невалидного поля нет причины")
	}
	if r.Value(extractors.FieldBirthDate) != "" {
		t.Error("Value невалидного поля должно быть пустым")
	}
}

// TestPartialMessage сообщение из двух полей дает чистые значения этих
// полей, остальные отсутствуют; заголовок следующей секции не прилипает
// к ФИО
func TestPartialMessage(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, "Водитель: Иванов Иван Иванович\nТелефон: 89261234567")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := r.Value(extractors.FieldDriverName); got != "Иванов Иван Иванович" {
		t.Errorf("ФИО = %q", got)
	}
	if got := r.Value(extractors.FieldPhone); got != "+7 (926) 123-45-67" {
		t.Errorf("телефон = %q", got)
	}
	for f, o := range r.Fields {
		if f == extractors.FieldDriverName || f == extractors.FieldPhone {
			continue
		}
		if o.Status != StatusAbsent {
			t.Errorf("поле %s: %+v, ожидалось отсутствие", f, o)
		}
	}
}

// TestLandlinePhoneInvalid городской номер найден и отформатирован, но
// помечен невалидным с сырым текстом и причиной, а не потерян
func TestLandlinePhoneInvalid(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, "Телефон: 84951234567")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := r.Fields[extractors.FieldPhone]
	if o.Status != StatusInvalid {
		t.Fatalf("статус = %s, ожидался invalid (%+v)", o.Status, o)
	}
	if o.Raw != "84951234567" {
		t.Errorf("Raw = %q", o.Raw)
	}
	if o.Reason == "" {
		t.Error("у невалидного номера нет причины")
	}
}

func TestEmptyText(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for f, o := range r.Fields {
		if o.Status != StatusAbsent {
			t.Errorf("поле %s в пустом тексте: %s", f, o.Status)
		}
	}
}

func TestParseCarrier(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindCarrier, "ООО «Ромашка» ИНН 7707083893 тел 89261234567")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := r.Value(extractors.FieldOrgType); got != "ООО" {
		t.Errorf("форма = %q", got)
	}
	if got := r.Value(extractors.FieldOrgName); got != "Ромашка" {
		t.Errorf("название = %q", got)
	}
	if got := r.Value(extractors.FieldOrgShortName); got != "ООО «Ромашка»" {
		t.Errorf("короткое название = %q", got)
	}
	if got := r.Value(extractors.FieldINN); got != "7707083893" {
		t.Errorf("ИНН = %q", got)
	}
	if got := r.Value(extractors.FieldContactPhone); got != "+7 (926) 123-45-67" {
		t.Errorf("телефон = %q", got)
	}
}

// TestINNOrgTypeMismatch ИНН из 12 цифр при форме ООО помечается невалидным
func TestINNOrgTypeMismatch(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindCarrier, "ООО Ромашка ИНН 502201234567")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := r.Fields[extractors.FieldINN]
	if o.Status != StatusInvalid {
		t.Fatalf("статус ИНН = %s, ожидался invalid", o.Status)
	}
}

func TestParseTransportation(t *testing.T) {
	p := newTestParser()
	text := `Водитель: Иванов Иван
Фирма: ООО Лютик
Направление: москва - коломна
Цена: 85 000
Оплата: без НДС
Дата перевозки: 30.08.2026
Пометка: срочно`
	r, err := p.Parse(KindTransportation, text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[extractors.Field]string{
		extractors.FieldDriverName: "Иванов Иван",
		extractors.FieldClientFirm: "Лютик",
		extractors.FieldRoute:      "Москва - Коломна",
		extractors.FieldPrice:      "85000 руб.",
		extractors.FieldPayment:    "без НДС",
		extractors.FieldHaulDate:   "30.08.2026",
		extractors.FieldNote:       "срочно",
	}
	for f, v := range want {
		if got := r.Value(f); got != v {
			t.Errorf("поле %s = %q, ожидалось %q (статус %s)", f, got, v, r.Fields[f].Status)
		}
	}
}

// TestDeptCodeFillsIssuedBy известный код подразделения восстанавливает
// орган выдачи, когда тот не назван в тексте
func TestDeptCodeFillsIssuedBy(t *testing.T) {
	p := newTestParser()
	r, err := p.Parse(KindDriver, "Паспорт 4616 123456, код подразделения 500-110")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := r.Fields[extractors.FieldPassportIssuedBy]
	if o.Status != StatusPresent || o.Value == "" {
		t.Errorf("орган выдачи не восстановлен: %+v", o)
	}
}

func TestParseKind(t *testing.T) {
	if _, err := ParseKind("driver"); err != nil {
		t.Errorf("driver: %v", err)
	}
	if _, err := ParseKind("unknown"); err == nil {
		t.Error("неизвестный вид прошел без ошибки")
	}
}

// TestParseConcurrent несколько горутин разбирают сообщения через один парсер
func TestParseConcurrent(t *testing.T) {
	p := newTestParser()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r, err := p.Parse(KindDriver, driverMessage)
				if err != nil {
					t.Errorf("Parse: %v", err)
					return
				}
				if got := r.Value(extractors.FieldPhone); got != "+7 (926) 123-45-67" {
					t.Errorf("телефон = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
