package parser

import "regexp"

// grammar is the compiled pattern bank: one entry per known game screen.
// The emoji and Russian copy in these patterns are the literal delimiters the
// game prints into rendered screens; they must stay byte-for-byte as observed
// or the grammars stop matching live forwards.
//
// Every pattern is independent and side-effect free: text in, match groups
// out. A pattern that does not match contributes nothing; none of them can
// fail on malformed input.
type grammar struct {
	// --- profile, long dialect ---
	// Matches the pipboy header:
	//   📟 Пип-бой 3000
	//   👤 Ivan
	profileHead *regexp.Regexp
	// Per-field lines of the long dialect, e.g. "❤️ Здоровье: 100/150".
	profileGang     *regexp.Regexp
	profileFraction *regexp.Regexp
	profileHP       *regexp.Regexp
	profileHunger   *regexp.Regexp
	profileAttack   *regexp.Regexp
	profileDefence  *regexp.Regexp
	profilePower    *regexp.Regexp
	profileAgility  *regexp.Regexp
	profileOratory  *regexp.Regexp
	profileAccuracy *regexp.Regexp
	profileStamina  *regexp.Regexp
	profileDzen     *regexp.Regexp
	profileLocation *regexp.Regexp

	// --- profile, short (tree) dialect ---
	// Matches the compact head line: "👤Ivan🏵🏵🏵". The medal run is the
	// inline dzen encoding; the tree lines below are matched field by field.
	shortHead *regexp.Regexp
	// Tree lines, prefixed with ├ or └:
	//   ├🤟 TestGang
	//   ├⚛️Republic
	//   ├❤️100/150
	//   ├🍗10%
	//   ├⚔️45(+10) 🛡30(+5)
	//   ├💪30 🏃20
	//   ├🗣15 🎯25
	//   ├🔋5/5
	//   └📍12км
	shortGang     *regexp.Regexp
	shortFraction *regexp.Regexp
	shortHP       *regexp.Regexp
	shortHunger   *regexp.Regexp
	shortCombat   *regexp.Regexp
	shortBody     *regexp.Regexp
	shortMind     *regexp.Regexp
	shortStamina  *regexp.Regexp
	shortKM       *regexp.Regexp

	// Dzen fallback encodings, tried against the text after the profile
	// match: a medal run of 1–3 or a medal followed by a digit, then the
	// progress-bar variant (see resolveDzen for the precedence chain).
	dzenMedals *regexp.Regexp
	dzenBar    *regexp.Regexp

	// Raid marker inside a profile forward: "⚔️Рейд" next to the location.
	profileRaidFlag *regexp.Regexp

	// --- raid banner ---
	// "Рейд в 14:00" or "Рейд в 14:00 21.06".
	raid *regexp.Regexp
	// Current-interval marker: the player is already standing on the point.
	raidNow *regexp.Regexp

	// --- info line / PvE / loot / loss ---
	// "❤️89/100 🍗10% 🔋4/5 📍12км"
	infoLine *regexp.Regexp
	// "💥Ты нанёс 45 урона" / "🩸Ты получил 30 урона" / "😵Радтаракан повержен"
	pveDealt *regexp.Regexp
	pveTaken *regexp.Regexp
	pveWin   *regexp.Regexp
	// "🕸Ты нашёл: Стимулятор" / "🕳Ты потерял: Доска"
	loot *regexp.Regexp
	loss *regexp.Regexp

	// --- PvP log ---
	// Header:
	//   ⚔️Исход боя⚔️
	//   🏆  Ivan
	//   💀 Petr
	pvpHead *regexp.Regexp
	// One exchange: "  Ivan💥34 💚5 🤖12 ❤️89" (regen and drone optional).
	pvpLine *regexp.Regexp
	// Footer defeat phrases, e.g. "Petr пал смертью храбрых".
	pvpDefeat *regexp.Regexp

	// --- gang / goat panels ---
	gangHead   *regexp.Regexp
	gangLeader *regexp.Regexp
	gangGoat   *regexp.Regexp
	gangLeague *regexp.Regexp
	// "├👤 Ivan ❤️ 👂3 📍12км"
	gangMember *regexp.Regexp

	goatHead   *regexp.Regexp
	goatLeague *regexp.Regexp
	goatRating *regexp.Regexp
	goatLeader *regexp.Regexp
	// "├🤟 Батары 💪12345 #42" (id optional)
	goatGang *regexp.Regexp

	// --- notebook ---
	notebookBanner *regexp.Regexp
	notebookLine   *regexp.Regexp

	// --- taking / capture ---
	takingStart   *regexp.Regexp
	takingSuccess *regexp.Regexp
	takingFail    *regexp.Regexp
	takingMember  *regexp.Regexp

	// --- boss fight ---
	bossAttack *regexp.Regexp
	bossHit    *regexp.Regexp
	bossDeath  *regexp.Regexp

	// --- misc screens ---
	dome       *regexp.Regexp
	domeRow    *regexp.Regexp
	getto      *regexp.Regexp
	gettoRow   *regexp.Regexp
	view       *regexp.Regexp
	viewRow    *regexp.Regexp
	meeting    *regexp.Regexp
	sumStat    *regexp.Regexp
	sumStatRow *regexp.Regexp

	// HTML-variant screens: the actor names are only distinguishable by the
	// bold markup around them, so these run against Message.HTMLText.
	scuffle *regexp.Regexp
	lynch   *regexp.Regexp
	pokemob *regexp.Regexp

	// --- list-shaped stock grammars (additive) ---
	backpack  *regexp.Regexp
	foodBag   *regexp.Regexp
	resources *regexp.Regexp
	junk      *regexp.Regexp
	stockItem *regexp.Regexp
}

// bossBanner is the fixed literal the boss-fight extractor gates on; the text
// must start with it.
const bossBanner = "☠️ БОЙ С БОССОМ ☠️"

// notebookBannerText gates the notebook extractor.
const notebookBannerText = "📗 Дневник выживальщика"

func newGrammar() *grammar {
	return &grammar{
		profileHead: regexp.MustCompile(`(?m)^📟 ?Пип-бой(?: \d+)?\n👤 ?(?P<nick>[^\n]+)$`),

		profileGang:     regexp.MustCompile(`(?m)^🤟 ?Банда: ?(?P<gang>[^\n]+)$`),
		profileFraction: regexp.MustCompile(`(?m)^⚜️ ?Фракция: ?(?:(?P<icon>[^\sА-Яа-яЁёA-Za-z][\x{FE0F}]?) ?)?(?P<name>[^\n]+)$`),
		profileHP:       regexp.MustCompile(`❤️ ?Здоровье: ?(?P<cur>\d+)/(?P<max>\d+)`),
		profileHunger:   regexp.MustCompile(`🍗 ?Голод: ?(?P<val>\d+)%`),
		profileAttack:   regexp.MustCompile(`⚔️ ?Урон: ?(?P<val>\d+)(?:\s*\(\+?\d+\))?`),
		profileDefence:  regexp.MustCompile(`🛡 ?Броня: ?(?P<val>\d+)(?:\s*\(\+?\d+\))?`),
		profilePower:    regexp.MustCompile(`💪 ?Сила: ?(?P<val>\d+)(?:\s*\(\+?\d+\))?`),
		profileAgility:  regexp.MustCompile(`🏃 ?Ловкость: ?(?P<val>\d+)(?:\s*\(\+?\d+\))?`),
		profileOratory:  regexp.MustCompile(`🗣 ?Харизма: ?(?P<val>\d+)(?:\s*\(\+?\d+\))?`),
		profileAccuracy: regexp.MustCompile(`🎯 ?Меткость: ?(?P<val>\d+)(?:\s*\(\+?\d+\))?`),
		profileStamina:  regexp.MustCompile(`🔋 ?Выносливость: ?(?P<cur>\d+)/(?P<max>\d+)`),
		profileDzen:     regexp.MustCompile(`🏵 ?Дзен: ?(?P<val>\d+)`),
		profileLocation: regexp.MustCompile(`📍 ?(?P<km>\d+) ?км\.?,? ?(?P<loc>[^\n⚔]*)`),

		shortHead:     regexp.MustCompile(`(?m)^👤(?P<nick>[^\n🏵]+)(?P<medals>🏵+)?$`),
		shortGang:     regexp.MustCompile(`^[├└]🤟 ?(?P<gang>.+)$`),
		shortFraction: regexp.MustCompile(`^[├└](?P<icon>[^\sА-Яа-яЁёA-Za-z][\x{FE0F}]?)(?P<name>[А-Яа-яЁёA-Za-z].*)$`),
		shortHP:       regexp.MustCompile(`^[├└]❤️(?P<cur>\d+)/(?P<max>\d+)`),
		shortHunger:   regexp.MustCompile(`^[├└]🍗(?P<val>\d+)%`),
		shortCombat:   regexp.MustCompile(`^[├└]⚔️(?P<att>\d+)(?:\(\+?\d+\))? 🛡(?P<def>\d+)(?:\(\+?\d+\))?`),
		shortBody:     regexp.MustCompile(`^[├└]💪(?P<pow>\d+)(?:\(\+?\d+\))? 🏃(?P<agi>\d+)(?:\(\+?\d+\))?`),
		shortMind:     regexp.MustCompile(`^[├└]🗣(?P<ora>\d+)(?:\(\+?\d+\))? 🎯(?P<acc>\d+)(?:\(\+?\d+\))?`),
		shortStamina:  regexp.MustCompile(`^[├└]🔋(?P<cur>\d+)/(?P<max>\d+)`),
		shortKM:       regexp.MustCompile(`^[├└]📍(?P<km>\d+) ?км`),

		dzenMedals: regexp.MustCompile(`(?P<run>🏵{1,3})(?P<digit>\d+)?`),
		dzenBar:    regexp.MustCompile(`🏵\s*\[(?P<bar>[▓░]+)\]`),

		profileRaidFlag: regexp.MustCompile(`⚔️ ?Рейд`),

		raid:    regexp.MustCompile(`Рейд в (?P<hour>\d{1,2}):00(?: (?P<day>\d{1,2})\.(?P<month>\d{1,2}))?`),
		raidNow: regexp.MustCompile(`Ты уже стоишь на точке|Рейд идёт прямо сейчас`),

		infoLine: regexp.MustCompile(`❤️(?P<hp>\d+)/(?P<maxhp>\d+) 🍗(?P<hunger>\d+)% 🔋(?P<st>\d+)/(?P<maxst>\d+) 📍(?P<km>\d+)км`),
		pveDealt: regexp.MustCompile(`💥Ты нанёс (?P<dmg>\d+) урона`),
		pveTaken: regexp.MustCompile(`🩸Ты получил (?P<dmg>\d+) урона`),
		pveWin:   regexp.MustCompile(`😵(?P<mob>[^\n]+?) повержен`),

		loot: regexp.MustCompile(`🕸Ты нашёл: ?(?P<what>[^\n]+)`),
		loss: regexp.MustCompile(`🕳Ты потерял: ?(?P<what>[^\n]+)`),

		pvpHead:   regexp.MustCompile(`(?m)^⚔️Исход боя⚔️\n🏆(?P<winner>[^\n]+)\n💀(?P<looser>[^\n]+)$`),
		pvpLine:   regexp.MustCompile(`^(?P<who>\s*[^\s💥][^💥]*?)💥(?P<dmg>\d+)(?: 💚(?P<regen>\d+))?(?: 🤖(?P<drone>\d+))? ❤️(?P<hp>-?\d+)$`),
		pvpDefeat: regexp.MustCompile(`(?m)^[^\n]+ (?:пал смертью храбрых|отправился к праотцам|больше не поднимется)[^\n]*$`),

		gangHead:   regexp.MustCompile(`(?m)^🤟 ?Банда: ?(?P<name>[^\n]+)$`),
		gangLeader: regexp.MustCompile(`(?m)^👑 ?(?P<nick>[^\n]+)$`),
		gangGoat:   regexp.MustCompile(`(?m)^🐐 ?Козёл: ?(?P<name>[^\n]+)$`),
		gangLeague: regexp.MustCompile(`(?m)^🏅 ?Лига: ?(?P<name>[^\n]+)$`),
		gangMember: regexp.MustCompile(`(?m)^[├└]👤 ?(?P<nick>.+?) (?P<status>\S+) 👂(?P<ears>\d+) 📍(?P<km>\d+)км$`),

		goatHead:   regexp.MustCompile(`(?m)^🐐 ?Козёл: ?(?P<name>[^\n]+)$`),
		goatLeague: regexp.MustCompile(`(?m)^🏅 ?Лига: ?(?P<name>[^\n]+)$`),
		goatRating: regexp.MustCompile(`(?m)^🏆 ?Рейтинг: ?(?P<val>\d+)$`),
		goatLeader: regexp.MustCompile(`(?m)^👑 ?(?P<nick>[^\n]+)$`),
		goatGang:   regexp.MustCompile(`(?m)^[├└]🤟 ?(?P<name>.+?) 💪(?P<power>\d+)(?: #(?P<id>\d+))?$`),

		notebookBanner: regexp.MustCompile(regexp.QuoteMeta(notebookBannerText)),
		notebookLine:   regexp.MustCompile(`^(?P<label>[^:\n]+): ?(?P<value>\d+) ?(?P<suffix>[^\n]*)$`),

		takingStart:   regexp.MustCompile(`🏰 ?Банда «(?P<gang>[^»]+)» начала захват локации (?P<loc>[^\n!]+)!?`),
		takingSuccess: regexp.MustCompile(`🏰 ?Банда «(?P<gang>[^»]+)» захватила локацию (?P<loc>[^\n!]+)!?`),
		takingFail:    regexp.MustCompile(`🏰 ?Банда «(?P<gang>[^»]+)» не смогла захватить локацию (?P<loc>[^\n.!]+)`),
		takingMember:  regexp.MustCompile(`(?m)^👤 ?(?P<nick>[^\n❤]+?)(?: ❤️(?P<hp>\d+))?$`),

		bossAttack: regexp.MustCompile(`^(?P<who>.+?) наносит (?P<dmg>\d+)$`),
		bossHit:    regexp.MustCompile(`^(?P<who>.+?) получает (?P<dmg>\d+)$`),
		bossDeath:  regexp.MustCompile(`^(?P<who>.+?) погибает$`),

		dome:     regexp.MustCompile(`⚡️ ?Купол Грома ?⚡️`),
		domeRow:  regexp.MustCompile(`(?m)^👤 ?(?P<nick>[^\n]+)$`),
		getto:    regexp.MustCompile(`🏚 ?Гетто`),
		gettoRow: regexp.MustCompile(`(?m)^👤 ?(?P<nick>[^\n]+)$`),
		view:     regexp.MustCompile(`🔭 ?Осмотр местности`),
		viewRow:  regexp.MustCompile(`(?m)^👤 ?(?P<nick>.+?) (?P<icon>\S+) 📍(?P<km>\d+)км$`),
		meeting:  regexp.MustCompile(`🤝 ?Ты встретил (?:(?P<icon>[^\sА-Яа-яЁёA-Za-z][\x{FE0F}]?) ?)?(?P<nick>[^\n]+)`),

		sumStat:    regexp.MustCompile(`🏆 ?Топ игроков по сумме характеристик`),
		sumStatRow: regexp.MustCompile(`(?m)^(?P<rank>\d+)\. (?P<nick>.+?) — (?P<sum>\d+)$`),

		scuffle: regexp.MustCompile(`<b>(?P<winner>[^<]+)</b> отвесил тумаков <b>(?P<looser>[^<]+)</b>`),
		lynch:   regexp.MustCompile(`<b>(?P<victim>[^<]+)</b> вздёрнут толпой(?: \(<i>инициатор: (?P<init>[^<]+)</i>\))?`),
		pokemob: regexp.MustCompile(`Покемоб <b>(?P<mob>[^<]+)</b> повержен!(?: Последний удар: <b>(?P<nick>[^<]+)</b>)?`),

		backpack:  regexp.MustCompile(`🎒 ?Рюкзак:`),
		foodBag:   regexp.MustCompile(`🍱 ?Сумка с едой:`),
		resources: regexp.MustCompile(`📦 ?Ресурсы:`),
		junk:      regexp.MustCompile(`🗑 ?Хлам:`),
		stockItem: regexp.MustCompile(`^[▫️◾️\s]*(?P<name>[^\n(]+?)(?: \(x(?P<amount>\d+)\))?$`),
	}
}
