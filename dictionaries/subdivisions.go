package dictionaries

// subdivisions известные коды подразделений, выдававших паспорта.
// По коду восстанавливается каноническое место выдачи. Таблица неполная:
// для неизвестного кода место выдачи остаётся как в исходном сообщении.
var subdivisions = map[string]Subdivision{
	"770-001": {Region: "г. Москва", Subdivision: "ГУ МВД России по г. Москве"},
	"780-001": {Region: "г. Санкт-Петербург", Subdivision: "ГУ МВД России по г. Санкт-Петербургу и Ленинградской области"},
	"500-001": {Region: "Московская область", Subdivision: "ГУ МВД России по Московской области"},
	"500-110": {Region: "Московская область", Subdivision: "ОУФМС России по Московской области по Коломенскому району"},
	"610-001": {Region: "Ростовская область", Subdivision: "ГУ МВД России по Ростовской области"},
	"230-001": {Region: "Краснодарский край", Subdivision: "ГУ МВД России по Краснодарскому краю"},
	"360-001": {Region: "Воронежская область", Subdivision: "ГУ МВД России по Воронежской области"},
	"100-001": {Region: "Республика Карелия", Subdivision: "МВД по Республике Карелия"},
	"260-001": {Region: "Ставропольский край", Subdivision: "ГУ МВД России по Ставропольскому краю"},
	"070-001": {Region: "Кабардино-Балкарская Республика", Subdivision: "МВД по Кабардино-Балкарской Республике"},
	"520-001": {Region: "Нижегородская область", Subdivision: "ГУ МВД России по Нижегородской области"},
	"660-001": {Region: "Свердловская область", Subdivision: "ГУ МВД России по Свердловской области"},
	"310-001": {Region: "Белгородская область", Subdivision: "УМВД России по Белгородской области"},
	"890-001": {Region: "Ямало-Ненецкий АО", Subdivision: "УМВД России по Ямало-Ненецкому автономному округу"},
	"530-001": {Region: "Новгородская область", Subdivision: "УМВД России по Новгородской области"},
}
