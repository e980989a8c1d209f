package dictionaries

// carBrands сопоставляет произвольное написание марки тягача с каноническим.
// Ключи в нижнем регистре; для каждой канонической формы присутствует её
// собственный ключ, чтобы нормализация была идемпотентной.
var carBrands = map[string]string{
	"volvo":         "Вольво",
	"вольво":        "Вольво",
	"волво":         "Вольво",
	"scania":        "Скания",
	"скания":        "Скания",
	"man":           "MAN",
	"ман":           "MAN",
	"daf":           "ДАФ",
	"даф":           "ДАФ",
	"mercedes":      "Mercedes-Benz",
	"mercedes-benz": "Mercedes-Benz",
	"mersedes-benz": "Mercedes-Benz",
	"мерседес":      "Mercedes-Benz",
	"мерседес-бенз": "Mercedes-Benz",
	"iveco":         "Iveco",
	"ивеко":         "Iveco",
	"renault":       "Renault",
	"рено":          "Renault",
	"kamaz":         "Камаз",
	"камаз":         "Камаз",
	"maz":           "МАЗ",
	"маз":           "МАЗ",
	"freightliner":  "Freightliner",
	"kenworth":      "Kenworth",
	"peterbilt":     "Peterbilt",
	"isuzu":         "Isuzu",
	"hino":          "Hino",
	"mitsubishi":    "Mitsubishi",
	"fuso":          "Fuso",
	"tatra":         "Tatra",
	"uaz":           "УАЗ",
	"уаз":           "УАЗ",
	"gaz":           "ГАЗ",
	"газ":           "ГАЗ",
	"zil":           "ЗИЛ",
	"зил":           "ЗИЛ",
	"фотон":         "Фотон",
	"foton":         "Фотон",
}

// trailerBrands сопоставляет написание марки прицепа с каноническим
var trailerBrands = map[string]string{
	"schmitz":       "Шмитц",
	"шмитц":         "Шмитц",
	"шмиц":          "Шмитц",
	"krone":         "Krone",
	"крона":         "Krone",
	"крон":          "Krone",
	"kögel":         "Kögel",
	"kogel":         "Kögel",
	"кёгель":        "Kögel",
	"кёгел":         "Kögel",
	"schwarzmüller": "Schwarzmüller",
	"schwarzmuller": "Schwarzmüller",
	"wielton":       "Wielton",
	"tonar":         "Тонар",
	"тонар":         "Тонар",
	"grunwald":      "Grunwald",
	"kässbohrer":    "Kässbohrer",
	"kassbohrer":    "Kässbohrer",
	"lamberet":      "Lamberet",
	"nefaz":         "НефАЗ",
	"нефаз":         "НефАЗ",
}

// orgTypes канонические организационно-правовые формы по аббревиатуре
var orgTypes = map[string]string{
	"ооо": "ООО",
	"ип":  "ИП",
	"оао": "ОАО",
	"зао": "ЗАО",
	"пао": "ПАО",
}
