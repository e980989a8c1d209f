package dictionaries

import "testing"

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"вольво", "volvo"},
		{"Скания", "skaniya"},
		{"man", "man"},
		{"шмитц", "shmitts"},
	}
	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, ожидалось %q", tt.in, got, tt.want)
		}
	}
}

// TestCanonicalSelfKeys каноническая форма марки имеет собственный ключ,
// иначе повторная нормализация меняет значение
func TestCanonicalSelfKeys(t *testing.T) {
	for _, dict := range []map[string]string{carBrands, trailerBrands} {
		seen := make(map[string]bool)
		for _, canon := range dict {
			seen[canon] = true
		}
		for canon := range seen {
			key := toLowerKey(canon)
			if _, ok := dict[key]; !ok {
				t.Errorf("у канонической формы %q нет собственного ключа %q", canon, key)
			}
		}
	}
}

func toLowerKey(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case r >= 'А' && r <= 'Я':
			r += 'а' - 'А'
		}
		out = append(out, r)
	}
	return string(out)
}

func TestRegionTables(t *testing.T) {
	d := Default()
	for _, region := range []string{"01", "46", "77", "99", "150", "750", "799"} {
		if !d.PlateRegions[region] {
			t.Errorf("код региона %s отсутствует в таблице номеров", region)
		}
	}
	if d.PlateRegions["00"] {
		t.Error("код региона 00 не должен существовать")
	}
	if !d.PassportRegions["46"] || d.PassportRegions["99"] {
		t.Error("таблица серий паспортов повреждена")
	}
}
