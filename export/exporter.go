// Package export выгружает реестры в файлы Excel, CSV и JSON.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"cargoparser/database"
)

// ExportFormat формат экспорта
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
)

// ParseFormat проверяет строковый формат экспорта из внешнего запроса
func ParseFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatJSON, FormatCSV, FormatExcel:
		return ExportFormat(s), nil
	case "xlsx":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Ext возвращает расширение файла для формата
func (f ExportFormat) Ext() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

var driverHeaders = []string{
	"ФИО", "Дата рождения", "Место рождения", "Гражданство", "Адрес регистрации",
	"Паспорт", "Кем выдан", "Дата выдачи", "Код подразделения",
	"ВУ", "Дата выдачи ВУ", "Телефон",
	"Марка авто", "Госномер", "Марка прицепа", "Номер прицепа", "Перевозчик",
}

var organizationHeaders = []string{
	"Форма", "Название", "Короткое название", "ИНН", "Телефон",
}

var transportationHeaders = []string{
	"Водитель", "Фирма", "Направление", "Цена", "Оплата", "Дата перевозки", "Пометка",
}

// Exporter выгружает реестры из базы данных
type Exporter struct {
	db *database.DB
}

// NewExporter создает новый экспортер
func NewExporter(db *database.DB) *Exporter {
	return &Exporter{db: db}
}

// registry содержимое всех реестров в строковом виде
type registry struct {
	Drivers         []database.DriverRow         `json:"drivers"`
	Clients         []database.OrganizationRow   `json:"clients"`
	Carriers        []database.OrganizationRow   `json:"carriers"`
	Transportations []database.TransportationRow `json:"transportations"`
}

func (e *Exporter) fetch(ctx context.Context) (registry, error) {
	var reg registry
	var err error

	if reg.Drivers, err = e.db.ListDrivers(ctx); err != nil {
		return registry{}, fmt.Errorf("failed to fetch drivers: %w", err)
	}
	if reg.Clients, err = e.db.ListOrganizations(ctx, database.OrgClient); err != nil {
		return registry{}, fmt.Errorf("failed to fetch clients: %w", err)
	}
	if reg.Carriers, err = e.db.ListOrganizations(ctx, database.OrgCarrier); err != nil {
		return registry{}, fmt.Errorf("failed to fetch carriers: %w", err)
	}
	if reg.Transportations, err = e.db.ListTransportations(ctx); err != nil {
		return registry{}, fmt.Errorf("failed to fetch transportations: %w", err)
	}
	return reg, nil
}

// Export выгружает реестры в файл выбранного формата
func (e *Exporter) Export(ctx context.Context, format ExportFormat, filename string) error {
	reg, err := e.fetch(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return exportJSON(reg, filename)
	case FormatCSV:
		return exportCSV(reg, filename)
	case FormatExcel:
		return exportExcel(reg, filename)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func driverCells(d database.DriverRow) []string {
	return []string{
		d.Name, d.BirthDate, d.BirthPlace, d.Citizenship, d.Residence,
		d.PassportNumber, d.PassportIssuedBy, d.PassportIssueDate, d.PassportDeptCode,
		d.LicenseNumber, d.LicenseIssueDate, d.Phone,
		d.VehicleBrand, d.VehiclePlate, d.TrailerBrand, d.TrailerPlate, d.Carrier,
	}
}

func organizationCells(o database.OrganizationRow) []string {
	return []string{o.OrgType, o.Name, o.ShortName, o.INN, o.ContactPhone}
}

func transportationCells(t database.TransportationRow) []string {
	return []string{t.DriverName, t.ClientFirm, t.Route, t.Price, t.Payment, t.HaulDate, t.Note}
}

// exportJSON выгружает реестры одним JSON-документом
func exportJSON(reg registry, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at":     time.Now().Format(time.RFC3339),
		"drivers":         reg.Drivers,
		"clients":         reg.Clients,
		"carriers":        reg.Carriers,
		"transportations": reg.Transportations,
	}

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// exportCSV выгружает реестры в один CSV-файл с секциями
func exportCSV(reg registry, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	write := func(record []string) error {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		return nil
	}

	sections := []struct {
		title   string
		headers []string
		rows    [][]string
	}{
		{"Водители", driverHeaders, nil},
		{"Фирмы", organizationHeaders, nil},
		{"Перевозчики", organizationHeaders, nil},
		{"Перевозки", transportationHeaders, nil},
	}
	for _, d := range reg.Drivers {
		sections[0].rows = append(sections[0].rows, driverCells(d))
	}
	for _, o := range reg.Clients {
		sections[1].rows = append(sections[1].rows, organizationCells(o))
	}
	for _, o := range reg.Carriers {
		sections[2].rows = append(sections[2].rows, organizationCells(o))
	}
	for _, t := range reg.Transportations {
		sections[3].rows = append(sections[3].rows, transportationCells(t))
	}

	for _, section := range sections {
		if err := write([]string{section.title}); err != nil {
			return err
		}
		if err := write(section.headers); err != nil {
			return err
		}
		for _, row := range section.rows {
			if err := write(row); err != nil {
				return err
			}
		}
	}

	return nil
}

// exportExcel выгружает реестры в книгу с листами по видам записей
func exportExcel(reg registry, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Стиль заголовков
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	writeSheet := func(name string, headers []string, rows [][]string) error {
		index, err := f.NewSheet(name)
		if err != nil {
			return fmt.Errorf("failed to create sheet: %w", err)
		}

		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(name, cell, header)
			f.SetCellStyle(name, cell, cell, headerStyle)
		}

		for rowIdx, row := range rows {
			for colIdx, value := range row {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				f.SetCellValue(name, cell, value)
			}
		}

		for i := range headers {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(name, col, col, 18)
		}

		f.SetActiveSheet(index)
		return nil
	}

	var driverRows [][]string
	for _, d := range reg.Drivers {
		driverRows = append(driverRows, driverCells(d))
	}
	var clientRows [][]string
	for _, o := range reg.Clients {
		clientRows = append(clientRows, organizationCells(o))
	}
	var carrierRows [][]string
	for _, o := range reg.Carriers {
		carrierRows = append(carrierRows, organizationCells(o))
	}
	var haulRows [][]string
	for _, t := range reg.Transportations {
		haulRows = append(haulRows, transportationCells(t))
	}

	if err := writeSheet("Водители", driverHeaders, driverRows); err != nil {
		return err
	}
	if err := writeSheet("Фирмы", organizationHeaders, clientRows); err != nil {
		return err
	}
	if err := writeSheet("Перевозчики", organizationHeaders, carrierRows); err != nil {
		return err
	}
	if err := writeSheet("Перевозки", transportationHeaders, haulRows); err != nil {
		return err
	}

	// Лист по умолчанию не нужен
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}
