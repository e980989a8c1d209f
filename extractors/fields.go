// Package extractors реализует библиотеку текстовых шаблонов и разрешение
// конфликтов между кандидатами полей. Извлечение работает в два шага:
// шаблоны намеренно извлекают широко (в том числе пересекающиеся цифровые
// последовательности), а централизованный резолвер решает, какому полю
// достанется спорное значение.
package extractors

// Field каноническое имя поля извлекаемой записи
type Field string

// Поля водителя
const (
	FieldDriverName        Field = "driver_name"
	FieldBirthDate         Field = "birth_date"
	FieldBirthPlace        Field = "birth_place"
	FieldCitizenship       Field = "citizenship"
	FieldResidence         Field = "residence_address"
	FieldPassportNumber    Field = "passport_number"
	FieldPassportIssuedBy  Field = "passport_issued_by"
	FieldPassportIssueDate Field = "passport_issue_date"
	FieldPassportDeptCode  Field = "passport_dept_code"
	FieldLicenseNumber     Field = "license_number"
	FieldLicenseIssueDate  Field = "license_issue_date"
	FieldPhone             Field = "phone"
	FieldVehicleBrand      Field = "vehicle_brand"
	FieldVehiclePlate      Field = "vehicle_plate"
	FieldTrailerBrand      Field = "trailer_brand"
	FieldTrailerPlate      Field = "trailer_plate"
	FieldCarrier           Field = "carrier"
)

// Поля организаций (перевозчик, фирма-заказчик)
const (
	FieldOrgType      Field = "org_type"
	FieldOrgName      Field = "org_name"
	FieldOrgShortName Field = "org_short_name"
	FieldINN          Field = "inn"
	FieldContactPhone Field = "contact_phone"
)

// Поля перевозки
const (
	FieldClientFirm Field = "client_firm"
	FieldRoute      Field = "route"
	FieldPrice      Field = "price"
	FieldPayment    Field = "payment"
	FieldHaulDate   Field = "haul_date"
	FieldNote       Field = "note"
)

// ConflictClass группа полей, кандидаты которых могут претендовать на один
// и тот же фрагмент текста
type ConflictClass string

const (
	// ClassNone поле не конфликтует с другими
	ClassNone ConflictClass = ""
	// ClassDigits цифровые последовательности: паспорт, ВУ, ИНН, телефон
	ClassDigits ConflictClass = "digit-sequence"
	// ClassDate даты: выдача паспорта и ВУ против даты рождения
	ClassDate ConflictClass = "date"
)

// NormalizeFunc приводит сырое значение кандидата к канонической форме.
// Пустой результат означает, что после очистки от значения ничего не
// осталось и поле считается отсутствующим.
type NormalizeFunc func(raw string) string

// ValidateFunc проверяет нормализованное значение; nil-ошибка означает
// пригодное значение
type ValidateFunc func(value string) error

// FieldSpec статическое описание одного поля: упорядоченные шаблоны,
// класс конфликтов и подключённые функции нормализации и валидации.
// Создаётся один раз при старте и далее не изменяется.
type FieldSpec struct {
	Field     Field
	Class     ConflictClass
	Patterns  []Pattern
	Normalize NormalizeFunc
	Validate  ValidateFunc
}

// Candidate одно совпадение шаблона для поля, ещё не зафиксированное
type Candidate struct {
	Field    Field
	Raw      string
	Start    int
	End      int
	Priority int
}
