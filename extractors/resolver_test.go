package extractors

import "testing"

// TestResolveDigitClass зафиксированная последовательность цифр недоступна
// полям с меньшим приоритетом
func TestResolveDigitClass(t *testing.T) {
	specs := []FieldSpec{
		{Field: FieldLicenseNumber, Class: ClassDigits},
		{Field: FieldPhone, Class: ClassDigits},
	}
	candidates := []Candidate{
		{Field: FieldLicenseNumber, Raw: "9931 849596", Start: 3, Priority: 0},
		{Field: FieldPhone, Raw: "9931849596", Start: 3, Priority: 2},
	}

	resolved := Resolve(specs, candidates)

	if resolved[FieldLicenseNumber] == nil {
		t.Fatal("номер ВУ не зафиксирован")
	}
	if resolved[FieldPhone] != nil {
		t.Errorf("телефон получил те же цифры: %+v", resolved[FieldPhone])
	}
}

// TestResolveDigitClassDistinct разные последовательности цифр фиксируются
// независимо
func TestResolveDigitClassDistinct(t *testing.T) {
	specs := []FieldSpec{
		{Field: FieldLicenseNumber, Class: ClassDigits},
		{Field: FieldPhone, Class: ClassDigits},
	}
	candidates := []Candidate{
		{Field: FieldLicenseNumber, Raw: "9931 849596", Start: 3, Priority: 0},
		{Field: FieldPhone, Raw: "89261234567", Start: 30, Priority: 1},
	}

	resolved := Resolve(specs, candidates)

	if resolved[FieldLicenseNumber] == nil || resolved[FieldPhone] == nil {
		t.Errorf("оба поля должны быть зафиксированы: %+v", resolved)
	}
}

// TestResolveDateClass дата рождения пропускает значение, совпавшее с
// датой выдачи, и берет следующего кандидата
func TestResolveDateClass(t *testing.T) {
	specs := []FieldSpec{
		{Field: FieldPassportIssueDate, Class: ClassDate},
		{Field: FieldBirthDate, Class: ClassDate},
	}
	candidates := []Candidate{
		{Field: FieldPassportIssueDate, Raw: "12.05.2010", Start: 10, Priority: 0},
		{Field: FieldBirthDate, Raw: "12.05.2010", Start: 40, Priority: 0},
		{Field: FieldBirthDate, Raw: "15.03.1985", Start: 60, Priority: 1},
	}

	resolved := Resolve(specs, candidates)

	if got := resolved[FieldPassportIssueDate]; got == nil || got.Raw != "12.05.2010" {
		t.Errorf("дата выдачи = %+v", got)
	}
	if got := resolved[FieldBirthDate]; got == nil || got.Raw != "15.03.1985" {
		t.Errorf("дата рождения = %+v", got)
	}
}

// TestResolveDateCanonicalForms сравнение дат не зависит от разделителя
// и хвостового "г."
func TestResolveDateCanonicalForms(t *testing.T) {
	specs := []FieldSpec{
		{Field: FieldPassportIssueDate, Class: ClassDate},
		{Field: FieldBirthDate, Class: ClassDate},
	}
	candidates := []Candidate{
		{Field: FieldPassportIssueDate, Raw: "12-05-2010", Start: 10, Priority: 0},
		{Field: FieldBirthDate, Raw: "12.05.2010 г.", Start: 40, Priority: 0},
	}

	resolved := Resolve(specs, candidates)

	if resolved[FieldBirthDate] != nil {
		t.Errorf("дата рождения совпала с датой выдачи, но зафиксирована: %+v", resolved[FieldBirthDate])
	}
}

// TestResolvePriorityThenPosition при равном приоритете побеждает более
// раннее вхождение
func TestResolvePriorityThenPosition(t *testing.T) {
	specs := []FieldSpec{{Field: FieldDriverName}}
	candidates := []Candidate{
		{Field: FieldDriverName, Raw: "Петров Петр", Start: 50, Priority: 1},
		{Field: FieldDriverName, Raw: "Иванов Иван", Start: 80, Priority: 0},
		{Field: FieldDriverName, Raw: "Сидоров Сидор", Start: 10, Priority: 1},
	}

	resolved := Resolve(specs, candidates)

	if got := resolved[FieldDriverName]; got == nil || got.Raw != "Иванов Иван" {
		t.Errorf("зафиксирован %+v, ожидался кандидат лучшего шаблона", got)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	specs := DriverSpecs()
	resolved := Resolve(specs, nil)

	for f, c := range resolved {
		if c != nil {
			t.Errorf("поле %s получило кандидата из пустого текста", f)
		}
	}
}
