package dictionaries

// compositeCities разговорные и составные названия населённых пунктов.
// Ключи в нижнем регистре.
var compositeCities = map[string]string{
	"спб":                "Санкт-Петербург",
	"питер":              "Санкт-Петербург",
	"санкт петербург":    "Санкт-Петербург",
	"санкт-петербург":    "Санкт-Петербург",
	"мск":                "Москва",
	"нижний новгород":    "Нижний Новгород",
	"усть-лабинск":       "Усть-Лабинск",
	"каменск-уральский":  "Каменск-Уральский",
	"каменск-шахтинский": "Каменск-Шахтинский",
	"новый уренгой":      "Новый Уренгой",
	"старый оскол":       "Старый Оскол",
	"великий новгород":   "Великий Новгород",
	"приморско-ахтарск":  "Приморско-Ахтарск",
}

// cityNominative приводит город из косвенного падежа к именительному
var cityNominative = map[string]string{
	"петрозаводске": "Петрозаводск",
	"москве":        "Москва",
	"петербурге":    "Санкт-Петербург",
	"борисоглебске": "Борисоглебск",
	"коломне":       "Коломна",
	"ростове":       "Ростов",
	"краснодаре":    "Краснодар",
	"воронеже":      "Воронеж",
}

// smallWords служебные слова и сокращения, которые при пословном
// форматировании остаются в нижнем регистре
var smallWords = map[string]bool{
	"по":    true,
	"в":     true,
	"на":    true,
	"и":     true,
	"для":   true,
	"с":     true,
	"у":     true,
	"к":     true,
	"от":    true,
	"до":    true,
	"г.":    true,
	"д.":    true,
	"ул.":   true,
	"пос.":  true,
	"кв.":   true,
	"кор.":  true,
	"корп.": true,
	"стр.":  true,
	"лит.":  true,
	"р-он":  true,
	"р-н":   true,
	"обл.":  true,
	"дом":   true,
	"код":   true,
	"под.":  true,
}
