// Генератор синтетических сообщений для ручной проверки разбора.
// Создает JSON-наборы со свободным текстом анкет водителей, перевозчиков
// и заявок на перевозку.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"
)

// TestMessage одно синтетическое сообщение
type TestMessage struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// TestDataset набор тестовых сообщений
type TestDataset struct {
	Count    int           `json:"count"`
	Messages []TestMessage `json:"messages"`
}

var (
	plateLetters = []rune("АВЕКМНОРСТУХ")
	regions      = []string{"77", "50", "750", "190", "23", "61", "36", "52"}
	brands       = []string{"Вольво", "Скания", "MAN", "ДАФ", "Камаз", "МАЗ", "Iveco"}
	trailers     = []string{"Шмитц", "Krone", "Тонар", "Kögel"}
	firstNames   = []string{"Иван", "Петр", "Сергей", "Алексей", "Дмитрий", "Николай"}
	lastNames    = []string{"Иванов", "Петров", "Сидоров", "Кузнецов", "Смирнов", "Попов"}
	middleNames  = []string{"Иванович", "Петрович", "Сергеевич", "Алексеевич", "Николаевич"}
	cities       = []string{"Москва", "Коломна", "Рязань", "Воронеж", "Краснодар", "Ростов"}
	orgNames     = []string{"Ромашка", "Лютик", "ТрансЛогистик", "АвтоДор", "Магистраль"}
)

func pick(list []string) string {
	return list[gofakeit.Number(0, len(list)-1)]
}

func fullName() string {
	return fmt.Sprintf("%s %s %s", pick(lastNames), pick(firstNames), pick(middleNames))
}

func phone() string {
	return fmt.Sprintf("8%d", gofakeit.Number(9000000000, 9999999999))
}

func plate() string {
	return fmt.Sprintf("%c%03d%c%c%s",
		plateLetters[gofakeit.Number(0, len(plateLetters)-1)],
		gofakeit.Number(1, 999),
		plateLetters[gofakeit.Number(0, len(plateLetters)-1)],
		plateLetters[gofakeit.Number(0, len(plateLetters)-1)],
		pick(regions),
	)
}

func trailerPlate() string {
	return fmt.Sprintf("%c%c%04d%s",
		plateLetters[gofakeit.Number(0, len(plateLetters)-1)],
		plateLetters[gofakeit.Number(0, len(plateLetters)-1)],
		gofakeit.Number(1, 9999),
		pick(regions)[:2],
	)
}

func date(minYear, maxYear int) string {
	return fmt.Sprintf("%02d.%02d.%d",
		gofakeit.Number(1, 28), gofakeit.Number(1, 12), gofakeit.Number(minYear, maxYear))
}

func driverMessage() string {
	return fmt.Sprintf(
		"Водитель: %s\nДата рождения: %s\nПаспорт: %04d %06d выдан ОУФМС России %s\nВУ: %04d %06d от %s\nТел: %s\nА/м %s %s\nПрицеп %s %s\nПеревозчик: ООО %s",
		fullName(),
		date(1960, 2005),
		gofakeit.Number(1000, 9999), gofakeit.Number(100000, 999999), date(2005, 2020),
		gofakeit.Number(1000, 9999), gofakeit.Number(100000, 999999), date(2010, 2024),
		phone(),
		pick(brands), plate(),
		pick(trailers), trailerPlate(),
		pick(orgNames),
	)
}

func carrierMessage() string {
	return fmt.Sprintf("ООО %s ИНН %d тел %s", pick(orgNames), gofakeit.Number(1000000000, 9999999999), phone())
}

func transportationMessage() string {
	return fmt.Sprintf(
		"Водитель: %s %s\nФирма: ООО %s\nНаправление: %s - %s\nЦена: %d\nОплата: без НДС\nДата перевозки: %s",
		pick(lastNames), pick(firstNames),
		pick(orgNames),
		pick(cities), pick(cities),
		gofakeit.Number(20, 200)*1000,
		date(2025, 2026),
	)
}

func main() {
	gofakeit.Seed(0)

	generators := []struct {
		kind string
		gen  func() string
	}{
		{"driver", driverMessage},
		{"carrier", carrierMessage},
		{"transportation", transportationMessage},
	}

	dataDir := filepath.Join("tests", "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	const perKind = 200
	for _, g := range generators {
		dataset := TestDataset{Count: perKind}
		for i := 0; i < perKind; i++ {
			dataset.Messages = append(dataset.Messages, TestMessage{
				ID:   i + 1,
				Kind: g.kind,
				Text: g.gen(),
			})
		}

		filename := filepath.Join(dataDir, fmt.Sprintf("messages_%s.json", g.kind))
		file, err := os.Create(filename)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(dataset); err != nil {
			log.Fatalf("Failed to encode %s: %v", filename, err)
		}
		file.Close()
		fmt.Printf("Generated %d %s messages -> %s\n", perKind, g.kind, filename)
	}
}
