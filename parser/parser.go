// Package parser собирает конвейер разбора свободного текста: извлечение
// кандидатов, разрешение конфликтов, нормализация и валидация. Парсер
// создаётся один раз при старте и безопасен для одновременного
// использования из нескольких горутин.
package parser

import (
	"fmt"
	"strings"

	"cargoparser/dictionaries"
	"cargoparser/extractors"
	"cargoparser/normalization"
	"cargoparser/quality"
)

// EntityKind вид извлекаемой записи
type EntityKind string

const (
	KindDriver         EntityKind = "driver"
	KindCarrier        EntityKind = "carrier"
	KindClient         EntityKind = "client"
	KindTransportation EntityKind = "transportation"
)

// ParseKind проверяет строковый вид записи из внешнего запроса
func ParseKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindDriver, KindCarrier, KindClient, KindTransportation:
		return EntityKind(s), nil
	}
	return "", fmt.Errorf("неизвестный вид записи %q", s)
}

// Status итоговое состояние поля после разбора
type Status string

const (
	// StatusPresent поле найдено, нормализовано и прошло проверку
	StatusPresent Status = "present"
	// StatusAbsent поле в тексте не найдено
	StatusAbsent Status = "absent"
	// StatusInvalid поле найдено, но значение не прошло проверку
	StatusInvalid Status = "invalid"
)

// Outcome результат разбора одного поля
type Outcome struct {
	Status  Status `json:"status"`
	Value   string `json:"value,omitempty"`
	Raw     string `json:"raw,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Result результат разбора одного сообщения
type Result struct {
	Kind   EntityKind                   `json:"kind"`
	Fields map[extractors.Field]Outcome `json:"fields"`
}

// Value возвращает нормализованное значение пригодного поля.
// Для отсутствующих и невалидных полей возвращается пустая строка.
func (r Result) Value(f extractors.Field) string {
	o := r.Fields[f]
	if o.Status != StatusPresent {
		return ""
	}
	return o.Value
}

// Present сообщает, что поле найдено и пригодно
func (r Result) Present(f extractors.Field) bool {
	return r.Fields[f].Status == StatusPresent
}

// Parser конвейер разбора. Все словари и таблицы шаблонов неизменяемы
// после создания.
type Parser struct {
	dicts      *dictionaries.Dictionaries
	normalizer *normalization.Normalizer
	validator  *quality.Validator
	profiles   map[EntityKind][]extractors.FieldSpec
}

// Options настройки конвейера
type Options struct {
	// Границы возраста водителя в годах
	MinDriverAge int
	MaxDriverAge int
}

// DefaultOptions возвращает настройки по умолчанию
func DefaultOptions() Options {
	return Options{MinDriverAge: 16, MaxDriverAge: 100}
}

// New создает конвейер разбора над справочниками
func New(dicts *dictionaries.Dictionaries, opts Options) *Parser {
	p := &Parser{
		dicts:      dicts,
		normalizer: normalization.New(dicts),
		validator:  quality.New(dicts, opts.MinDriverAge, opts.MaxDriverAge),
	}
	p.profiles = map[EntityKind][]extractors.FieldSpec{
		KindDriver:         p.wire(extractors.DriverSpecs()),
		KindCarrier:        p.wire(extractors.CarrierSpecs()),
		KindClient:         p.wire(extractors.ClientSpecs()),
		KindTransportation: p.wire(extractors.TransportationSpecs()),
	}
	return p
}

// Parse разбирает сообщение и возвращает результат по каждому полю
// профиля. Пустой текст дает запись, где каждое поле отсутствует.
func (p *Parser) Parse(kind EntityKind, text string) (Result, error) {
	specs, ok := p.profiles[kind]
	if !ok {
		return Result{}, fmt.Errorf("неизвестный вид записи %q", kind)
	}

	result := Result{
		Kind:   kind,
		Fields: make(map[extractors.Field]Outcome, len(specs)),
	}

	// Плоская копия сохраняет байтовые смещения, поэтому кандидаты
	// строчных и плоских шаблонов сопоставимы между собой
	flat := strings.ReplaceAll(text, "\n", " ")

	var candidates []extractors.Candidate
	for _, spec := range specs {
		candidates = append(candidates, extractors.ExtractCandidates(flat, text, spec)...)
	}
	resolved := extractors.Resolve(specs, candidates)

	for _, spec := range specs {
		result.Fields[spec.Field] = p.outcome(spec, resolved[spec.Field])
	}

	p.applyCrossChecks(kind, &result)
	return result, nil
}

// outcome прогоняет зафиксированного кандидата через нормализацию и валидацию
func (p *Parser) outcome(spec extractors.FieldSpec, c *extractors.Candidate) Outcome {
	if c == nil {
		return Outcome{Status: StatusAbsent}
	}
	value := c.Raw
	if spec.Normalize != nil {
		value = spec.Normalize(c.Raw)
	}
	if value == "" {
		return Outcome{Status: StatusAbsent}
	}
	if spec.Validate != nil {
		if err := spec.Validate(value); err != nil {
			return Outcome{Status: StatusInvalid, Value: value, Raw: c.Raw, Reason: err.Error()}
		}
	}
	return Outcome{Status: StatusPresent, Value: value, Raw: c.Raw}
}

// applyCrossChecks выполняет проверки, которым нужно больше одного поля
func (p *Parser) applyCrossChecks(kind EntityKind, r *Result) {
	switch kind {
	case KindDriver:
		p.fillIssuedByFromDeptCode(r)
		p.attachWarning(r, extractors.FieldPassportNumber, p.validator.CheckPassportRegion)
		p.attachWarning(r, extractors.FieldVehiclePlate, p.validator.CheckPlateRegion)
		p.attachWarning(r, extractors.FieldTrailerPlate, p.validator.CheckPlateRegion)
	case KindCarrier, KindClient:
		p.checkINNAgainstOrgType(r)
		p.attachWarning(r, extractors.FieldINN, p.validator.CheckINNChecksum)
		p.deriveOrgShortName(r)
	}
}

// fillIssuedByFromDeptCode восстанавливает орган выдачи паспорта по коду
// подразделения, если сам орган в тексте не назван
func (p *Parser) fillIssuedByFromDeptCode(r *Result) {
	code := r.Fields[extractors.FieldPassportDeptCode]
	if code.Status != StatusPresent {
		return
	}
	sub, ok := p.dicts.Subdivisions[code.Value]
	if !ok {
		return
	}
	issued := r.Fields[extractors.FieldPassportIssuedBy]
	if issued.Status == StatusAbsent {
		r.Fields[extractors.FieldPassportIssuedBy] = Outcome{
			Status: StatusPresent,
			Value:  sub.Subdivision,
			Raw:    code.Raw,
		}
	}
}

// checkINNAgainstOrgType сверяет длину ИНН с организационной формой
func (p *Parser) checkINNAgainstOrgType(r *Result) {
	inn := r.Fields[extractors.FieldINN]
	if inn.Status != StatusPresent {
		return
	}
	orgType := r.Fields[extractors.FieldOrgType].Value
	if err := p.validator.INNForOrgType(inn.Value, orgType); err != nil {
		inn.Status = StatusInvalid
		inn.Reason = err.Error()
		r.Fields[extractors.FieldINN] = inn
	}
}

// deriveOrgShortName строит краткое наименование из формы и названия
func (p *Parser) deriveOrgShortName(r *Result) {
	if r.Fields[extractors.FieldOrgShortName].Status == StatusPresent {
		return
	}
	name := r.Fields[extractors.FieldOrgName]
	if name.Status != StatusPresent {
		return
	}
	short := p.normalizer.OrgShortName(r.Fields[extractors.FieldOrgType].Value, name.Value)
	if short == "" {
		return
	}
	r.Fields[extractors.FieldOrgShortName] = Outcome{
		Status: StatusPresent,
		Value:  short,
		Raw:    name.Raw,
	}
}

// attachWarning добавляет мягкое предупреждение к пригодному полю
func (p *Parser) attachWarning(r *Result, f extractors.Field, check func(string) string) {
	o := r.Fields[f]
	if o.Status != StatusPresent || o.Warning != "" {
		return
	}
	if w := check(o.Value); w != "" {
		o.Warning = w
		r.Fields[f] = o
	}
}
