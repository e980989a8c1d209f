package parser

import "cargoparser/extractors"

// wire подключает функции нормализации и валидации к копии таблицы
// шаблонов. Таблицы сами по себе знают только как искать, конвейер
// решает, как чистить и проверять найденное.
func (p *Parser) wire(specs []extractors.FieldSpec) []extractors.FieldSpec {
	n, v := p.normalizer, p.validator
	for i := range specs {
		switch specs[i].Field {
		case extractors.FieldDriverName:
			specs[i].Normalize = n.Name
		case extractors.FieldBirthDate:
			specs[i].Normalize = n.Date
			specs[i].Validate = v.BirthDate
		case extractors.FieldBirthPlace:
			specs[i].Normalize = n.Address
		case extractors.FieldCitizenship:
			specs[i].Normalize = n.Citizenship
		case extractors.FieldResidence:
			specs[i].Normalize = n.Address
		case extractors.FieldPassportNumber:
			specs[i].Normalize = n.Passport
			specs[i].Validate = v.Passport
		case extractors.FieldPassportIssuedBy:
			specs[i].Normalize = n.IssuedBy
		case extractors.FieldPassportIssueDate:
			specs[i].Normalize = n.Date
			specs[i].Validate = v.PastDate
		case extractors.FieldPassportDeptCode:
			specs[i].Normalize = n.DeptCode
			specs[i].Validate = v.DeptCode
		case extractors.FieldLicenseNumber:
			specs[i].Normalize = n.License
			specs[i].Validate = v.License
		case extractors.FieldLicenseIssueDate:
			specs[i].Normalize = n.Date
			specs[i].Validate = v.PastDate
		case extractors.FieldPhone, extractors.FieldContactPhone:
			specs[i].Normalize = n.Phone
			specs[i].Validate = v.Phone
		case extractors.FieldVehicleBrand:
			specs[i].Normalize = n.VehicleBrand
		case extractors.FieldVehiclePlate:
			specs[i].Normalize = n.VehiclePlate
			specs[i].Validate = v.VehiclePlate
		case extractors.FieldTrailerBrand:
			specs[i].Normalize = n.TrailerBrand
		case extractors.FieldTrailerPlate:
			specs[i].Normalize = n.TrailerPlate
			specs[i].Validate = v.TrailerPlate
		case extractors.FieldCarrier:
			specs[i].Normalize = n.Note
		case extractors.FieldOrgType:
			specs[i].Normalize = n.OrgType
		case extractors.FieldOrgName:
			specs[i].Normalize = n.OrgName
		case extractors.FieldOrgShortName:
			specs[i].Normalize = n.Note
		case extractors.FieldINN:
			specs[i].Normalize = n.INN
			specs[i].Validate = v.INN
		case extractors.FieldClientFirm:
			specs[i].Normalize = n.OrgName
		case extractors.FieldRoute:
			specs[i].Normalize = n.Route
		case extractors.FieldPrice:
			specs[i].Normalize = n.Price
		case extractors.FieldPayment:
			specs[i].Normalize = n.Payment
		case extractors.FieldHaulDate:
			specs[i].Normalize = n.Date
			specs[i].Validate = v.Date
		case extractors.FieldNote:
			specs[i].Normalize = n.Note
		}
	}
	return specs
}
