package dictionaries

import "fmt"

// plateRegions коды регионов на номерных знаках. Таблица заведомо неполная:
// валидатор трактует отсутствующий код как мягкое предупреждение, а не как
// ошибку.
var plateRegions = buildPlateRegions()

// passportRegions двузначные коды регионов в серии паспорта
var passportRegions = buildPassportRegions()

func buildPlateRegions() map[string]bool {
	set := make(map[string]bool, 150)
	// базовые двузначные коды 01-99
	for i := 1; i <= 99; i++ {
		set[fmt.Sprintf("%02d", i)] = true
	}
	// трёхзначные коды крупных регионов
	extra := []int{
		102, 113, 116, 121, 123, 124, 125, 126, 134, 136, 138, 142,
		147, 150, 152, 154, 155, 159, 161, 163, 164, 169, 173, 174,
		177, 178, 186, 190, 193, 196, 197, 198, 199, 702, 716, 725,
		750, 761, 763, 777, 790, 796, 797, 799,
	}
	for _, code := range extra {
		set[fmt.Sprintf("%d", code)] = true
	}
	return set
}

func buildPassportRegions() map[string]bool {
	set := make(map[string]bool, 92)
	for i := 1; i <= 92; i++ {
		set[fmt.Sprintf("%02d", i)] = true
	}
	return set
}
