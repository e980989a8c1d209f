package extractors

// Фрагменты, из которых собираются шаблоны. Ключевые слова делаются
// нечувствительными к регистру группой (?i:...), а не глобальным флагом,
// чтобы классы кириллических букв в самих значениях сохраняли регистр.
const (
	// Буквы, допустимые на регистрационных знаках (кириллица с
	// однозначными латинскими двойниками)
	plateLetters = "АВЕКМНОРСТУХавекмнорстух"

	// Форматы знаков тягача
	plateStandard = `[` + plateLetters + `][\s\-]?\d{3}[\s\-]?[` + plateLetters + `]{2}[\s\-]?\d{2,3}`
	plateYellow   = `[` + plateLetters + `][\s\-]?\d{3}[\s\-]?[` + plateLetters + `][\s\-]?\d{2,3}`
	plateMoto     = `\d{4}[\s\-]?[` + plateLetters + `]{2}[\s\-]?\d{2,3}`
	plateLegacy   = `[` + plateLetters + `]{1,2}[\s\-]?\d{4}[\s\-]?\d{2,3}`

	// Формат знака прицепа: две буквы, четыре цифры, регион
	plateTrailer     = `[` + plateLetters + `]{2}[\s\-]?\d{4}(?:[\s\-]?\d{2,3})?`
	plateTrailerFull = `[` + plateLetters + `]{2}[\s\-]?\d{4}[\s\-]?\d{2,3}`

	// Ключевые слова секций. Короткие формы (тс, авто, ву, п/п) обязаны
	// стоять отдельным словом, иначе они срабатывают внутри произвольных
	// слов; у RE2 нет \b для кириллицы, поэтому границы потребляющие
	kwBound   = `(?:^|[^а-яёa-z])`
	kwAfter   = `(?:[^а-яёa-z0-9]|$)`
	kwVehicle = kwBound + `(?i:автомобиль|автомашина|машина|авто|а/м|тягач|мотоцикл|мото|т/с|тс|марка)` + kwAfter
	kwTrailer = kwBound + `(?i:полуприцеп|прицеп|п/пр\.?|п/п)` + kwAfter
	kwLicense = kwBound + `(?i:водительское\s*удостоверение|вод\.?\s*удост\.?|вод\.?\s*уд\.?|в/у|ву|права)` + kwAfter
	kwPhone   = kwBound + `(?i:телефон(?:\s*водителя)?|тел\.?|мобильный|моб\.?|сотовый|контактный\s*телефон)` + kwAfter

	// Слово бренда: латиница или кириллица, допускается дефис
	brandWord = `[A-Za-zА-Яа-яЁё][A-Za-zА-Яа-яЁё-]*`

	// Захват ФИО. Строчный вариант не пересекает перевод строки, иначе
	// в имя попадает заголовок следующей секции. Плоский вариант ленивый
	// и растет до первого стоп-якоря stopName
	nameLine = `[А-ЯЁ][а-яё]+(?:[ \t]+[А-ЯЁ][а-яё]+){1,3}`
	nameFlat = `[А-ЯЁ][а-яё]+(?:\s+[А-ЯЁ][а-яё]+){1,3}?`
	stopName = `(?:\s*(?i:дата|д\.\s*р\.|г\.\s*р\.|место|гражданство|паспорт|серия|код|тел|моб\.|сотовый|контакт|в/у|ву\s|водительское|права|адрес|прописан|прописка|зарегистрирован|регистрация|проживает|а/м|автомобиль|автомашина|машина|авто|тягач|мотоцикл|т/с|марка|полуприцеп|прицеп|п/п|перевозчик|фирма|направление|маршрут|цена|оплата|пометка|инн)|\s+[а-яё]|[\s]*[,.;:]|$)`

	dateShape = `\d{2}[.\-]\d{2}[.\-]\d{4}`

	// Разделитель между ключевым словом и значением
	sep = `\s*[:\-]*\s*`

	// Стоп-якоря: начало следующей распознаваемой секции либо конец текста
	stopDriver = `(?:\s*(?i:д\.в\.|дата\s*выдачи|дата\s*рождения|место\s*рождения|код\s*подразделения|код|паспорт|серия|в/у|ву\s|водительское|права|тел\.?|телефон|а/м|автомобиль|автомашина|машина|тягач|прицеп|полуприцеп|п/п|перевозчик|гражданство|прописан|прописка|зарегистрирован|адрес|проживает)|\s*` + dateShape + `|$)`
	stopOrg    = `(?:\s*(?i:инн|кпп|тел\.?|телефон|контакт|короткое\s*название|название|адрес)|\s*\+?[78][\d\s\-()]{9,16}|$)`
	stopHaul   = `(?:\s*(?i:фирма|направление|цена|оплата|дата\s*перевозки|пометка|водитель)|$)`
)

// driverSpecs поля анкеты водителя
var driverSpecs = []FieldSpec{
	{
		Field: FieldDriverName,
		Patterns: []Pattern{
			NewLinePattern(`(?m)^\s*(?i:водитель|ф\.?\s*и\.?\s*о\.?(?:\s*водителя)?|фио(?:\s*водителя)?|вод\.)` + sep + `(` + nameLine + `)`),
			NewPattern(`(?i:водитель|ф\.?\s*и\.?\s*о\.?(?:\s*водителя)?|фио(?:\s*водителя)?)` + sep + `(` + nameFlat + `)` + stopName),
		},
	},
	{
		Field: FieldBirthDate,
		Class: ClassDate,
		Patterns: []Pattern{
			NewPattern(`(?i:дата\s*рождения|д\.?\s*р\.?|г\.?\s*р\.?)` + sep + `(` + dateShape + `)`),
			NewPattern(`(` + dateShape + `)\s*(?i:г\.?\s*р\.?|года?\s*рождения)`),
			NewPattern(`(?:^|[^\d.])(\d{2}\.\d{2}\.\d{4})`),
		},
	},
	{
		Field: FieldBirthPlace,
		Patterns: []Pattern{
			NewPattern(`(?i:место\s*рождения)` + sep + `(.+?)` + stopDriver),
		},
	},
	{
		Field: FieldCitizenship,
		Patterns: []Pattern{
			NewPattern(`(?i:гражданство)` + sep + `([А-ЯЁа-яёA-Za-z ]+?)` + stopDriver),
		},
	},
	{
		Field: FieldResidence,
		Patterns: []Pattern{
			NewPattern(`(?i:проживает\s*по\s*адресу|адрес\s*проживания|адрес\s*регистрации|проживает|прописана?|прописка|зарегистрирована?|регистрация)` + sep + `(.+?)` + stopDriver),
		},
	},
	{
		Field: FieldPassportNumber,
		Class: ClassDigits,
		Patterns: []Pattern{
			NewPattern(`(?i:серия\s*номер)\s*:?\s*(\d{4})\s*(\d{6})`, 1, 2),
			NewPattern(`(?i:паспорта?|серия(?:\s*и\s*номер)?|данные\s*водителя)`+sep+`(?i:серия\s*)?(?:№\s*)?(\d{2}\s?\d{2}|\d{4})\s*(?:№\s*|(?i:номер)\s*)?(\d{6})`, 1, 2),
			NewLinePattern(`(?m)^\s*(\d{4})\s*(\d{6})(?:\s|$)`, 1, 2),
		},
	},
	{
		Field: FieldPassportIssuedBy,
		Patterns: []Pattern{
			NewPattern(`(?i:кем\s*выдано?|выдано?)` + sep + `(.+?)` + stopDriver),
			NewLinePattern(`(?m)^\s*\d{4}\s*\d{6}\s+([^\d\n]{5,}?)(?:\s*` + dateShape + `|$)`),
		},
	},
	{
		Field: FieldPassportIssueDate,
		Class: ClassDate,
		Patterns: []Pattern{
			NewPattern(`(?i:дата\s*выдачи|д\.в\.)` + sep + `(` + dateShape + `)`),
			NewPattern(`(?i:паспорта?|пасп\.|серия\s*и\s*номер|данные\s*водителя|выдано?).{0,100}?(` + dateShape + `)`),
		},
	},
	{
		Field: FieldPassportDeptCode,
		Patterns: []Pattern{
			NewPattern(`(?i:код\s*подразделения)` + sep + `(\d{3}-\d{3})`),
			NewPattern(`(?:^|[^\d-])(\d{3}-\d{3})(?:[^\d-]|$)`),
		},
	},
	{
		Field: FieldLicenseNumber,
		Class: ClassDigits,
		Patterns: []Pattern{
			NewPattern(kwLicense + sep + `(?:№\s*)?(\d{2}\s?\d{2}\s?\d{6}|\d{4}\s?\d{6}|\d{10})`),
		},
	},
	{
		Field: FieldLicenseIssueDate,
		Class: ClassDate,
		Patterns: []Pattern{
			NewPattern(kwLicense + `.{0,60}?(?i:выдано|дата\s*выдачи|от)\s*:?.{0,20}?(` + dateShape + `)`),
			NewPattern(kwLicense + `.{0,60}?(` + dateShape + `)`),
		},
	},
	{
		Field: FieldPhone,
		Class: ClassDigits,
		Patterns: []Pattern{
			NewPattern(kwPhone + `\D{0,12}?(\+?\d[\d\s\-()]{8,18}\d)`),
			NewPattern(`(?:^|[^\d])(\+?[78][\d\s\-()]{9,16}\d)`),
			NewPattern(`(?:^|[^\d])(9\d{2}[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2})(?:[^\d]|$)`),
		},
	},
	{
		Field: FieldVehiclePlate,
		Patterns: []Pattern{
			NewPattern(kwVehicle+`\s*[:\-/]*\s*(?:`+brandWord+`\s+)?(?:№\s*|н\.з\.?\s*)?(`+plateStandard+`)`, 1),
			NewPattern(kwVehicle+`\s*[:\-/]*\s*(?:`+brandWord+`\s+)?(?:№\s*|н\.з\.?\s*)?(`+plateYellow+`)`, 1),
			NewPattern(kwVehicle+`\s*[:\-/]*\s*(?:`+brandWord+`\s+)?(?:№\s*|н\.з\.?\s*)?(`+plateMoto+`)`, 1),
			NewPattern(kwVehicle+`\s*[:\-/]*\s*(?:`+brandWord+`\s+)?(?:№\s*|н\.з\.?\s*)?(`+plateLegacy+`)`, 1),
			NewPattern(`(?:^|\s)(`+plateStandard+`)(?:[\s,.;]|$)`, 1),
			NewPattern(`(?:^|\s)(`+plateYellow+`)(?:[\s,.;]|$)`, 1),
			NewPattern(`(?:^|\s)(`+plateMoto+`)(?:[\s,.;]|$)`, 1),
		},
	},
	{
		Field: FieldVehicleBrand,
		Patterns: []Pattern{
			NewPattern(kwVehicle + `\s*[:\-/]*\s*(` + brandWord + `)\s+(?:№\s*|н\.з\.?\s*)?(?:` + plateStandard + `|` + plateYellow + `|` + plateMoto + `|` + plateLegacy + `)`),
			NewPattern(`(` + brandWord + `)\s+(?:№\s*)?(?:` + plateStandard + `|` + plateYellow + `|` + plateMoto + `)`),
		},
	},
	{
		Field: FieldTrailerPlate,
		Patterns: []Pattern{
			NewPattern(kwTrailer+sep+`(?:н\.з\.?\s*)?(?:`+brandWord+`\s+)?(?:№\s*|н\.з\.?\s*)?(`+plateTrailer+`)`, 1),
			NewPattern(`(?:^|\s)(`+plateTrailerFull+`)(?:[\s,.;]|$)`, 1),
		},
	},
	{
		Field: FieldTrailerBrand,
		Patterns: []Pattern{
			NewPattern(kwTrailer + sep + `(` + brandWord + `)\s+(?:№\s*|н\.з\.?\s*)?(?:` + plateTrailer + `)`),
			NewPattern(`(` + brandWord + `)\s+(?:` + plateTrailerFull + `)`),
		},
	},
	{
		Field: FieldCarrier,
		Patterns: []Pattern{
			NewPattern(`(?i:перевозчик)` + sep + `(.+?)(?:\s*(?i:водитель|паспорт|тел\.?|телефон|инн)|\s*\+?[78][\d\s\-()]{9,16}|$)`),
		},
	},
}

// carrierSpecs поля перевозчика
var carrierSpecs = []FieldSpec{
	{
		Field: FieldOrgType,
		Patterns: []Pattern{
			NewPattern(`(?:^|[\s:«"'])(?i:(ооо|ип|оао|зао|пао))(?:[\s»"'.,]|$)`),
		},
	},
	{
		Field: FieldOrgName,
		Patterns: []Pattern{
			NewPattern(`(?i:название)\s*:?\s*(.+?)` + stopOrg),
			NewPattern(`(?i:перевозчик)`+sep+`((?i:ооо|ип|оао|зао|пао)\s+.+?)`+stopOrg, 1),
			NewPattern(`((?i:ооо|ип|оао|зао|пао)\s+.+?)` + stopOrg),
		},
	},
	{
		Field: FieldOrgShortName,
		Patterns: []Pattern{
			NewPattern(`(?i:короткое\s+название)\s*:?\s*(.+?)(?:\s*(?i:инн|название|тел\.?|телефон)|[.]|$)`),
		},
	},
	{
		Field: FieldINN,
		Class: ClassDigits,
		Patterns: []Pattern{
			NewPattern(`(?i:инн)` + sep + `(\d{10,12})`),
			NewPattern(`(?:^|[^\d])(\d{12})(?:[^\d]|$)`),
			NewPattern(`(?:^|[^\d])(\d{10})(?:[^\d]|$)`),
		},
	},
	{
		Field: FieldContactPhone,
		Class: ClassDigits,
		Patterns: []Pattern{
			NewPattern(kwPhone + `\D{0,12}?(\+?\d[\d\s\-()]{8,18}\d)`),
			NewPattern(`(?:^|[^\d])(\+?[78][\d\s\-()]{9,16}\d)`),
			NewPattern(`(?:^|[^\d])(9\d{2}[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2})(?:[^\d]|$)`),
		},
	},
}

// transportationSpecs поля заявки на перевозку
var transportationSpecs = []FieldSpec{
	{
		Field: FieldDriverName,
		Patterns: []Pattern{
			NewLinePattern(`(?m)^\s*(?i:водитель|ф\.?\s*и\.?\s*о\.?(?:\s*водителя)?|фио(?:\s*водителя)?)` + sep + `(` + nameLine + `)`),
			NewPattern(`(?i:водитель)` + sep + `(` + nameFlat + `)` + stopName),
		},
	},
	{
		Field: FieldClientFirm,
		Patterns: []Pattern{
			NewPattern(`(?i:фирма)` + sep + `([\wА-Яа-яЁё \-«»"']+?)` + stopHaul),
		},
	},
	{
		Field: FieldRoute,
		Patterns: []Pattern{
			NewPattern(`(?i:направление|маршрут)` + sep + `([\wА-Яа-яЁё \-—]+?)` + stopHaul),
		},
	},
	{
		Field: FieldPrice,
		Patterns: []Pattern{
			NewPattern(`(?i:цена)` + sep + `(\d(?:[\d\s]*\d)?)`),
		},
	},
	{
		Field: FieldPayment,
		Patterns: []Pattern{
			NewPattern(`(?i:оплата)` + sep + `(.+?)` + stopHaul),
		},
	},
	{
		Field: FieldHaulDate,
		Class: ClassDate,
		Patterns: []Pattern{
			NewPattern(`(?i:дата\s*перевозки)` + sep + `(` + dateShape + `)`),
		},
	},
	{
		Field: FieldNote,
		Patterns: []Pattern{
			NewPattern(`(?i:пометка)` + sep + `(.+?)` + stopHaul),
		},
	},
}

// DriverSpecs возвращает копию спецификаций полей водителя
func DriverSpecs() []FieldSpec { return copySpecs(driverSpecs) }

// CarrierSpecs возвращает копию спецификаций полей перевозчика
func CarrierSpecs() []FieldSpec { return copySpecs(carrierSpecs) }

// ClientSpecs возвращает копию спецификаций полей фирмы-заказчика.
// Набор полей совпадает с перевозчиком: различие только в целевой таблице.
func ClientSpecs() []FieldSpec { return copySpecs(carrierSpecs) }

// TransportationSpecs возвращает копию спецификаций полей перевозки
func TransportationSpecs() []FieldSpec { return copySpecs(transportationSpecs) }

// copySpecs отдаёт изменяемую копию верхнего уровня: вызывающая сторона
// подключает функции нормализации и валидации, не трогая исходные таблицы
func copySpecs(src []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, len(src))
	copy(out, src)
	return out
}
