// Package world holds the static game-world lookup tables used by the parser
// and the game-logic listeners: fractions, map locations, reward icons, item
// classification sets, and the survival-diary label table.
//
// All tables are plain data reverse-engineered from rendered game screens.
// They are constructed once via New and never mutated afterwards, so a single
// *Data value can be shared freely between goroutines.
package world

import "time"

// Fraction is the internal code for a game faction.
type Fraction string

// Known fraction codes. UnknownFraction is never stored in the tables; the
// parser passes unrecognized icon/name pairs through as a literal label.
const (
	FractionRepublic    Fraction = "republic"
	FractionVault       Fraction = "vault"
	FractionCitadel     Fraction = "citadel"
	FractionMegaton     Fraction = "megaton"
	FractionThugs       Fraction = "thugs"
	FractionEnclave     Fraction = "enclave"
	UnknownFraction     Fraction = ""
)

// Location is one fixed point on the game map. Icon is the reward glyph the
// game prints next to the location name in raid and loot banners.
type Location struct {
	KM   int
	Name string
	Icon string
}

// Raid timing constants. Raids run on a fixed 8-hour cycle anchored at the
// first raid of the day.
const (
	RaidCycleHours = 8
	RaidAnchorHour = 1 // raids at 01:00, 09:00, 17:00
)

// RaidCycle is the raid period as a duration.
const RaidCycle = RaidCycleHours * time.Hour

// Fallback kilometers assigned by the loot classifier when no reward-icon
// sequence matches and the item is classified by set membership instead.
// Empirically observed: food drops at the Warehouses, drugs at the Hospital.
const (
	FoodKM  = 20
	DrugsKM = 16
)

// Stat keys produced by the notebook label table. SinkKey collects values
// whose label is not in the table.
const (
	SinkKey = "misc"
)

// Data bundles every static lookup table. Construct with New and treat as
// immutable.
type Data struct {
	// FractionByIcon maps a faction glyph to its code.
	FractionByIcon map[string]Fraction
	// FractionByName maps a rendered faction name (Russian and the English
	// variants the game client localizes to) to its code.
	FractionByName map[string]Fraction
	// Locations maps a kilometer marker to the location at that point.
	Locations map[int]Location
	// KMByName is the reverse lookup from location name to kilometer.
	KMByName map[string]int
	// Food and Drugs are the literal item-name sets used by the second
	// stage of loot classification.
	Food  map[string]struct{}
	Drugs map[string]struct{}
	// NotebookKeys maps a survival-diary line label to an internal stat key.
	NotebookKeys map[string]string
}

// New builds the full lookup-table set.
func New() *Data {
	d := &Data{
		FractionByIcon: map[string]Fraction{
			"⚛️": FractionRepublic,
			"⚛":  FractionRepublic, // without variation selector
			"🔰": FractionVault,
			"⚙️": FractionCitadel,
			"⚙":  FractionCitadel,
			"💣": FractionMegaton,
			"🔪": FractionThugs,
			"🏴": FractionEnclave,
		},
		FractionByName: map[string]Fraction{
			"Республика":  FractionRepublic,
			"Republic":    FractionRepublic,
			"Убежище 6":   FractionVault,
			"Vault 6":     FractionVault,
			"Цитадель":    FractionCitadel,
			"Citadel":     FractionCitadel,
			"Мегатонна":   FractionMegaton,
			"Megaton":     FractionMegaton,
			"Головорезы":  FractionThugs,
			"Thugs":       FractionThugs,
			"Анклав":      FractionEnclave,
			"Enclave":     FractionEnclave,
		},
		Food: map[string]struct{}{
			"Жареная крыса":  {},
			"Сушёное мясо":   {},
			"Тушёнка":        {},
			"Консервы":       {},
			"Корень кактуса": {},
			"Радскорпион на вертеле": {},
		},
		Drugs: map[string]struct{}{
			"Стимулятор": {},
			"Антирадин":  {},
			"Баффаут":    {},
			"Ментаты":    {},
			"Психо":      {},
			"Винт":       {},
		},
		NotebookKeys: map[string]string{
			"Убито монстров":       "monsters_killed",
			"Пройдено километров":  "km_walked",
			"Найдено крышек":       "caps_found",
			"Потеряно крышек":      "caps_lost",
			"Побед в дуэлях":       "pvp_wins",
			"Поражений в дуэлях":   "pvp_losses",
			"Успешных рейдов":      "raids",
			"Вскрыто сундуков":     "boxes_opened",
			"Смертей":              "deaths",
		},
	}

	locations := []Location{
		{5, "Старая фабрика", "🔩"},
		{9, "Завод «Ядер-Кола»", "🥤"},
		{12, "Тюрьма", "⛓"},
		{16, "Госпиталь", "💉"},
		{20, "Склады", "🍗"},
		{24, "Датацентр", "💾"},
		{28, "Радиостанция", "📻"},
		{32, "Научный комплекс", "🔬"},
		{38, "Водонапорная станция", "💧"},
		{46, "Крепость", "🏰"},
		{54, "Авиабаза", "✈️"},
		{63, "Старый бункер", "☢️"},
	}
	d.Locations = make(map[int]Location, len(locations))
	d.KMByName = make(map[string]int, len(locations))
	for _, loc := range locations {
		d.Locations[loc.KM] = loc
		d.KMByName[loc.Name] = loc.KM
	}

	return d
}

// LocationByIcon returns the location whose reward icon appears in the table,
// or a zero Location and false.
func (d *Data) LocationByIcon(icon string) (Location, bool) {
	for _, loc := range d.Locations {
		if loc.Icon == icon {
			return loc, true
		}
	}
	return Location{}, false
}

// IsFood reports whether the item name is in the food set.
func (d *Data) IsFood(name string) bool {
	_, ok := d.Food[name]
	return ok
}

// IsDrug reports whether the item name is in the drug set.
func (d *Data) IsDrug(name string) bool {
	_, ok := d.Drugs[name]
	return ok
}

// NotebookKey resolves a diary label to its stat key, falling back to SinkKey.
func (d *Data) NotebookKey(label string) string {
	if key, ok := d.NotebookKeys[label]; ok {
		return key
	}
	return SinkKey
}

// LastRaidTime returns the start of the raid period containing t: the most
// recent raid boundary at or before t on the fixed 8-hour cycle.
func (d *Data) LastRaidTime(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), RaidAnchorHour, 0, 0, 0, t.Location())
	if t.Before(day) {
		day = day.Add(-24 * time.Hour)
	}
	raid := day
	for !raid.Add(RaidCycle).After(t) {
		raid = raid.Add(RaidCycle)
	}
	return raid
}
