package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cargoparser/parser"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func testDriver() parser.DriverRecord {
	return parser.DriverRecord{
		Name:           "Иванов Иван Иванович",
		BirthDate:      "15.03.1985",
		PassportNumber: "46 16 123456",
		LicenseNumber:  "99 31 849596",
		Phone:          "+7 (926) 123-45-67",
		VehicleBrand:   "Вольво",
		VehiclePlate:   "В 123 РО 750",
		Carrier:        "ООО Ромашка",
	}
}

func TestSaveAndFindDriver(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.SaveDriver(ctx, testDriver()); err != nil {
		t.Fatalf("SaveDriver: %v", err)
	}

	found, err := db.FindDriverByName(ctx, "Иванов Иван Иванович")
	if err != nil {
		t.Fatalf("FindDriverByName: %v", err)
	}
	if found.Phone != "+7 (926) 123-45-67" {
		t.Errorf("Phone = %q", found.Phone)
	}
	if found.VehiclePlate != "В 123 РО 750" {
		t.Errorf("VehiclePlate = %q", found.VehiclePlate)
	}
}

func TestSaveDriverUpsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rec := testDriver()
	if _, err := db.SaveDriver(ctx, rec); err != nil {
		t.Fatalf("SaveDriver: %v", err)
	}

	// Повторное сохранение с тем же ФИО обновляет запись
	rec.Phone = "+7 (903) 765-43-21"
	if _, err := db.SaveDriver(ctx, rec); err != nil {
		t.Fatalf("SaveDriver повторно: %v", err)
	}

	drivers, err := db.ListDrivers(ctx)
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	if len(drivers) != 1 {
		t.Fatalf("записей %d, ожидалась 1", len(drivers))
	}
	if drivers[0].Phone != "+7 (903) 765-43-21" {
		t.Errorf("Phone после обновления = %q", drivers[0].Phone)
	}
}

func TestSaveDriverWithoutName(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.SaveDriver(context.Background(), parser.DriverRecord{}); err == nil {
		t.Error("запись без ФИО сохранилась")
	}
}

func TestFindDriverNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.FindDriverByName(context.Background(), "Петров")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, ожидалась ErrNotFound", err)
	}
}

func TestDeleteDriver(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id, err := db.SaveDriver(ctx, testDriver())
	if err != nil {
		t.Fatalf("SaveDriver: %v", err)
	}

	if err := db.DeleteDriver(ctx, id); err != nil {
		t.Fatalf("DeleteDriver: %v", err)
	}
	if err := db.DeleteDriver(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("повторное удаление: err = %v, ожидалась ErrNotFound", err)
	}
}

func TestOrganizations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	carrier := parser.OrganizationRecord{
		OrgType:      "ООО",
		Name:         "Ромашка",
		ShortName:    "ООО «Ромашка»",
		INN:          "7707083893",
		ContactPhone: "+7 (926) 123-45-67",
	}
	if _, err := db.SaveOrganization(ctx, OrgCarrier, carrier); err != nil {
		t.Fatalf("SaveOrganization: %v", err)
	}

	client := parser.OrganizationRecord{OrgType: "ООО", Name: "Лютик"}
	if _, err := db.SaveOrganization(ctx, OrgClient, client); err != nil {
		t.Fatalf("SaveOrganization: %v", err)
	}

	carriers, err := db.ListOrganizations(ctx, OrgCarrier)
	if err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
	if len(carriers) != 1 {
		t.Fatalf("перевозчиков %d, ожидался 1", len(carriers))
	}
	if carriers[0].INN != "7707083893" {
		t.Errorf("INN = %q", carriers[0].INN)
	}

	// Одноименная организация в разных реестрах не конфликтует
	if _, err := db.SaveOrganization(ctx, OrgClient, carrier); err != nil {
		t.Errorf("SaveOrganization в другой реестр: %v", err)
	}
}

func TestTransportations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := parser.TransportationRecord{
		DriverName: "Иванов Иван",
		ClientFirm: "Лютик",
		Route:      "Москва - Коломна",
		Price:      "85000 руб.",
		Payment:    "без НДС",
		HaulDate:   "30.08.2026",
	}
	if _, err := db.SaveTransportation(ctx, first); err != nil {
		t.Fatalf("SaveTransportation: %v", err)
	}
	second := first
	second.Route = "Коломна - Рязань"
	if _, err := db.SaveTransportation(ctx, second); err != nil {
		t.Fatalf("SaveTransportation: %v", err)
	}

	list, err := db.ListTransportations(ctx)
	if err != nil {
		t.Fatalf("ListTransportations: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("записей %d, ожидалось 2", len(list))
	}
	// Свежие записи первыми
	if list[0].Route != "Коломна - Рязань" {
		t.Errorf("первая запись %q", list[0].Route)
	}
}
