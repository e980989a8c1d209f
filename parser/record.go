package parser

import "cargoparser/extractors"

// DriverRecord анкета водителя в плоском виде для хранения и выгрузки.
// Пустая строка означает отсутствующее или невалидное поле.
type DriverRecord struct {
	Name              string `json:"name"`
	BirthDate         string `json:"birth_date"`
	BirthPlace        string `json:"birth_place"`
	Citizenship       string `json:"citizenship"`
	Residence         string `json:"residence_address"`
	PassportNumber    string `json:"passport_number"`
	PassportIssuedBy  string `json:"passport_issued_by"`
	PassportIssueDate string `json:"passport_issue_date"`
	PassportDeptCode  string `json:"passport_dept_code"`
	LicenseNumber     string `json:"license_number"`
	LicenseIssueDate  string `json:"license_issue_date"`
	Phone             string `json:"phone"`
	VehicleBrand      string `json:"vehicle_brand"`
	VehiclePlate      string `json:"vehicle_plate"`
	TrailerBrand      string `json:"trailer_brand"`
	TrailerPlate      string `json:"trailer_plate"`
	Carrier           string `json:"carrier"`
}

// OrganizationRecord перевозчик или фирма-заказчик
type OrganizationRecord struct {
	OrgType      string `json:"org_type"`
	Name         string `json:"org_name"`
	ShortName    string `json:"org_short_name"`
	INN          string `json:"inn"`
	ContactPhone string `json:"contact_phone"`
}

// TransportationRecord заявка на перевозку
type TransportationRecord struct {
	DriverName string `json:"driver_name"`
	ClientFirm string `json:"client_firm"`
	Route      string `json:"route"`
	Price      string `json:"price"`
	Payment    string `json:"payment"`
	HaulDate   string `json:"haul_date"`
	Note       string `json:"note"`
}

// DriverRecordFrom собирает анкету из результата разбора. Невалидные
// поля в запись не попадают.
func DriverRecordFrom(r Result) DriverRecord {
	return DriverRecord{
		Name:              r.Value(extractors.FieldDriverName),
		BirthDate:         r.Value(extractors.FieldBirthDate),
		BirthPlace:        r.Value(extractors.FieldBirthPlace),
		Citizenship:       r.Value(extractors.FieldCitizenship),
		Residence:         r.Value(extractors.FieldResidence),
		PassportNumber:    r.Value(extractors.FieldPassportNumber),
		PassportIssuedBy:  r.Value(extractors.FieldPassportIssuedBy),
		PassportIssueDate: r.Value(extractors.FieldPassportIssueDate),
		PassportDeptCode:  r.Value(extractors.FieldPassportDeptCode),
		LicenseNumber:     r.Value(extractors.FieldLicenseNumber),
		LicenseIssueDate:  r.Value(extractors.FieldLicenseIssueDate),
		Phone:             r.Value(extractors.FieldPhone),
		VehicleBrand:      r.Value(extractors.FieldVehicleBrand),
		VehiclePlate:      r.Value(extractors.FieldVehiclePlate),
		TrailerBrand:      r.Value(extractors.FieldTrailerBrand),
		TrailerPlate:      r.Value(extractors.FieldTrailerPlate),
		Carrier:           r.Value(extractors.FieldCarrier),
	}
}

// OrganizationRecordFrom собирает запись организации из результата разбора
func OrganizationRecordFrom(r Result) OrganizationRecord {
	return OrganizationRecord{
		OrgType:      r.Value(extractors.FieldOrgType),
		Name:         r.Value(extractors.FieldOrgName),
		ShortName:    r.Value(extractors.FieldOrgShortName),
		INN:          r.Value(extractors.FieldINN),
		ContactPhone: r.Value(extractors.FieldContactPhone),
	}
}

// TransportationRecordFrom собирает запись перевозки из результата разбора
func TransportationRecordFrom(r Result) TransportationRecord {
	return TransportationRecord{
		DriverName: r.Value(extractors.FieldDriverName),
		ClientFirm: r.Value(extractors.FieldClientFirm),
		Route:      r.Value(extractors.FieldRoute),
		Price:      r.Value(extractors.FieldPrice),
		Payment:    r.Value(extractors.FieldPayment),
		HaulDate:   r.Value(extractors.FieldHaulDate),
		Note:       r.Value(extractors.FieldNote),
	}
}
