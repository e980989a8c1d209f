// Package dictionaries содержит статические справочники нормализации.
// Все таблицы загружаются один раз при старте процесса и далее только
// читаются, поэтому их можно безопасно разделять между горутинами без
// синхронизации.
package dictionaries

// Dictionaries набор справочников, передаваемый в парсер и нормализатор
type Dictionaries struct {
	CarBrands       map[string]string
	TrailerBrands   map[string]string
	CompositeCities map[string]string
	CityNominative  map[string]string
	SmallWords      map[string]bool
	Subdivisions    map[string]Subdivision
	PlateRegions    map[string]bool
	PassportRegions map[string]bool
	OrgTypes        map[string]string
}

// Subdivision сведения о подразделении, выдавшем паспорт
type Subdivision struct {
	Region      string
	Subdivision string
}

// Default возвращает справочники по умолчанию. Возвращаемое значение
// используется как read-only: копий не делается.
func Default() *Dictionaries {
	return &Dictionaries{
		CarBrands:       carBrands,
		TrailerBrands:   trailerBrands,
		CompositeCities: compositeCities,
		CityNominative:  cityNominative,
		SmallWords:      smallWords,
		Subdivisions:    subdivisions,
		PlateRegions:    plateRegions,
		PassportRegions: passportRegions,
		OrgTypes:        orgTypes,
	}
}
