package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cargoparser/parser"
)

// ErrNotFound запись в реестре отсутствует
var ErrNotFound = errors.New("record not found")

// OrgKind вид организации в реестре
type OrgKind string

const (
	OrgClient  OrgKind = "client"
	OrgCarrier OrgKind = "carrier"
)

// DriverRow строка реестра водителей
type DriverRow struct {
	ID int64 `json:"id"`
	parser.DriverRecord
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// OrganizationRow строка реестра организаций
type OrganizationRow struct {
	ID   int64   `json:"id"`
	Kind OrgKind `json:"kind"`
	parser.OrganizationRecord
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TransportationRow строка журнала перевозок
type TransportationRow struct {
	ID int64 `json:"id"`
	parser.TransportationRecord
	CreatedAt string `json:"created_at"`
}

// SaveDriver сохраняет анкету водителя. Повторное сохранение с тем же
// ФИО обновляет существующую запись.
func (db *DB) SaveDriver(ctx context.Context, rec parser.DriverRecord) (int64, error) {
	if rec.Name == "" {
		return 0, fmt.Errorf("driver record without name")
	}
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO drivers (
			name, birth_date, birth_place, citizenship, residence_address,
			passport_number, passport_issued_by, passport_issue_date, passport_dept_code,
			license_number, license_issue_date, phone,
			vehicle_brand, vehicle_plate, trailer_brand, trailer_plate, carrier
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			birth_date = excluded.birth_date,
			birth_place = excluded.birth_place,
			citizenship = excluded.citizenship,
			residence_address = excluded.residence_address,
			passport_number = excluded.passport_number,
			passport_issued_by = excluded.passport_issued_by,
			passport_issue_date = excluded.passport_issue_date,
			passport_dept_code = excluded.passport_dept_code,
			license_number = excluded.license_number,
			license_issue_date = excluded.license_issue_date,
			phone = excluded.phone,
			vehicle_brand = excluded.vehicle_brand,
			vehicle_plate = excluded.vehicle_plate,
			trailer_brand = excluded.trailer_brand,
			trailer_plate = excluded.trailer_plate,
			carrier = excluded.carrier,
			updated_at = CURRENT_TIMESTAMP`,
		rec.Name, rec.BirthDate, rec.BirthPlace, rec.Citizenship, rec.Residence,
		rec.PassportNumber, rec.PassportIssuedBy, rec.PassportIssueDate, rec.PassportDeptCode,
		rec.LicenseNumber, rec.LicenseIssueDate, rec.Phone,
		rec.VehicleBrand, rec.VehiclePlate, rec.TrailerBrand, rec.TrailerPlate, rec.Carrier,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save driver: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get driver id: %w", err)
	}
	return id, nil
}

const driverColumns = `id, name, birth_date, birth_place, citizenship, residence_address,
	passport_number, passport_issued_by, passport_issue_date, passport_dept_code,
	license_number, license_issue_date, phone,
	vehicle_brand, vehicle_plate, trailer_brand, trailer_plate, carrier,
	created_at, updated_at`

func scanDriver(row interface{ Scan(...interface{}) error }) (DriverRow, error) {
	var d DriverRow
	var (
		birthDate, birthPlace, citizenship, residence       sql.NullString
		passportNumber, passportIssuedBy, passportIssueDate sql.NullString
		passportDeptCode, licenseNumber, licenseIssueDate   sql.NullString
		phone, vehicleBrand, vehiclePlate                   sql.NullString
		trailerBrand, trailerPlate, carrier                 sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.Name, &birthDate, &birthPlace, &citizenship, &residence,
		&passportNumber, &passportIssuedBy, &passportIssueDate, &passportDeptCode,
		&licenseNumber, &licenseIssueDate, &phone,
		&vehicleBrand, &vehiclePlate, &trailerBrand, &trailerPlate, &carrier,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return DriverRow{}, err
	}
	d.BirthDate = nullString(birthDate)
	d.BirthPlace = nullString(birthPlace)
	d.Citizenship = nullString(citizenship)
	d.Residence = nullString(residence)
	d.PassportNumber = nullString(passportNumber)
	d.PassportIssuedBy = nullString(passportIssuedBy)
	d.PassportIssueDate = nullString(passportIssueDate)
	d.PassportDeptCode = nullString(passportDeptCode)
	d.LicenseNumber = nullString(licenseNumber)
	d.LicenseIssueDate = nullString(licenseIssueDate)
	d.Phone = nullString(phone)
	d.VehicleBrand = nullString(vehicleBrand)
	d.VehiclePlate = nullString(vehiclePlate)
	d.TrailerBrand = nullString(trailerBrand)
	d.TrailerPlate = nullString(trailerPlate)
	d.Carrier = nullString(carrier)
	return d, nil
}

// FindDriverByName ищет водителя по точному совпадению ФИО
func (db *DB) FindDriverByName(ctx context.Context, name string) (DriverRow, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE name = ?`, name)
	d, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverRow{}, ErrNotFound
	}
	if err != nil {
		return DriverRow{}, fmt.Errorf("failed to find driver: %w", err)
	}
	return d, nil
}

// ListDrivers возвращает всех водителей реестра
func (db *DB) ListDrivers(ctx context.Context) ([]DriverRow, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+driverColumns+` FROM drivers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []DriverRow
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

// DeleteDriver удаляет водителя по идентификатору
func (db *DB) DeleteDriver(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveOrganization сохраняет организацию. Повторное сохранение с тем же
// названием в том же реестре обновляет запись.
func (db *DB) SaveOrganization(ctx context.Context, kind OrgKind, rec parser.OrganizationRecord) (int64, error) {
	if rec.Name == "" {
		return 0, fmt.Errorf("organization record without name")
	}
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO organizations (kind, org_type, org_name, org_short_name, inn, contact_phone)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, org_name) DO UPDATE SET
			org_type = excluded.org_type,
			org_short_name = excluded.org_short_name,
			inn = excluded.inn,
			contact_phone = excluded.contact_phone,
			updated_at = CURRENT_TIMESTAMP`,
		string(kind), rec.OrgType, rec.Name, rec.ShortName, rec.INN, rec.ContactPhone,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save organization: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get organization id: %w", err)
	}
	return id, nil
}

// ListOrganizations возвращает организации одного вида
func (db *DB) ListOrganizations(ctx context.Context, kind OrgKind) ([]OrganizationRow, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, kind, org_type, org_name, org_short_name, inn, contact_phone, created_at, updated_at
		FROM organizations WHERE kind = ? ORDER BY org_name`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []OrganizationRow
	for rows.Next() {
		var o OrganizationRow
		var orgType, shortName, inn, phone sql.NullString
		if err := rows.Scan(&o.ID, &o.Kind, &orgType, &o.Name, &shortName, &inn, &phone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		o.OrgType = nullString(orgType)
		o.ShortName = nullString(shortName)
		o.INN = nullString(inn)
		o.ContactPhone = nullString(phone)
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

// DeleteOrganization удаляет организацию по идентификатору
func (db *DB) DeleteOrganization(ctx context.Context, id int64) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM organizations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveTransportation добавляет запись в журнал перевозок
func (db *DB) SaveTransportation(ctx context.Context, rec parser.TransportationRecord) (int64, error) {
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO transportations (driver_name, client_firm, route, price, payment, haul_date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.DriverName, rec.ClientFirm, rec.Route, rec.Price, rec.Payment, rec.HaulDate, rec.Note,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save transportation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transportation id: %w", err)
	}
	return id, nil
}

// ListTransportations возвращает журнал перевозок, свежие записи первыми
func (db *DB) ListTransportations(ctx context.Context) ([]TransportationRow, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, driver_name, client_firm, route, price, payment, haul_date, note, created_at
		FROM transportations ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transportations: %w", err)
	}
	defer rows.Close()

	var list []TransportationRow
	for rows.Next() {
		var t TransportationRow
		var driverName, clientFirm, route, price, payment, haulDate, note sql.NullString
		if err := rows.Scan(&t.ID, &driverName, &clientFirm, &route, &price, &payment, &haulDate, &note, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transportation: %w", err)
		}
		t.DriverName = nullString(driverName)
		t.ClientFirm = nullString(clientFirm)
		t.Route = nullString(route)
		t.Price = nullString(price)
		t.Payment = nullString(payment)
		t.HaulDate = nullString(haulDate)
		t.Note = nullString(note)
		list = append(list, t)
	}
	return list, rows.Err()
}
