package listeners

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastelandbot/wastelandbot/internal/database"
	"github.com/wastelandbot/wastelandbot/internal/parser"
	"github.com/wastelandbot/wastelandbot/internal/world"
)

// fakeStore records the store calls the updaters make. Unused methods return
// zero values.
type fakeStore struct {
	players     []*database.Player
	raids       []*database.Raid
	attendance  map[time.Time][]string
	stock       map[int64][]database.StockRecord
	notebook    map[string]map[string]int
	groups      []*database.Group
	members     map[uint][]database.GroupMember
	nextGroupID uint
	failUpsert  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		attendance: make(map[time.Time][]string),
		stock:      make(map[int64][]database.StockRecord),
		notebook:   make(map[string]map[string]int),
		members:    make(map[uint][]database.GroupMember),
	}
}

func (f *fakeStore) Ping(context.Context) error { return nil }

func (f *fakeStore) UpsertPlayer(_ context.Context, p *database.Player) error {
	if f.failUpsert {
		return errors.New("boom")
	}
	f.players = append(f.players, p)
	return nil
}

func (f *fakeStore) GetPlayerByNickname(context.Context, string) (*database.Player, error) {
	return nil, nil
}

func (f *fakeStore) GetPlayerByTelegramID(context.Context, int64) (*database.Player, error) {
	return nil, nil
}

func (f *fakeStore) TopPlayersBySumStat(context.Context, int) ([]database.Player, error) {
	return nil, nil
}

func (f *fakeStore) UpsertGroup(_ context.Context, g *database.Group) (uint, error) {
	f.nextGroupID++
	f.groups = append(f.groups, g)
	return f.nextGroupID, nil
}

func (f *fakeStore) ReplaceGroupMembers(_ context.Context, id uint, ms []database.GroupMember) error {
	f.members[id] = ms
	return nil
}

func (f *fakeStore) GetGroup(context.Context, string, string) (*database.Group, []database.GroupMember, error) {
	return nil, nil, nil
}

func (f *fakeStore) SaveRaid(_ context.Context, r *database.Raid) error {
	f.raids = append(f.raids, r)
	return nil
}

func (f *fakeStore) LatestRaid(context.Context) (*database.Raid, error) { return nil, nil }

func (f *fakeStore) MarkRaidAttendance(_ context.Context, at time.Time, nick string) error {
	f.attendance[at] = append(f.attendance[at], nick)
	return nil
}

func (f *fakeStore) RaidRoster(context.Context, time.Time) ([]string, error) { return nil, nil }

func (f *fakeStore) DeleteRaidsBefore(context.Context, time.Time) (int64, error) { return 0, nil }

func (f *fakeStore) ReplaceStock(_ context.Context, senderID int64, items []database.StockRecord) error {
	f.stock[senderID] = items
	return nil
}

func (f *fakeStore) GetStock(context.Context, int64) ([]database.StockRecord, error) {
	return nil, nil
}

func (f *fakeStore) SaveNotebookStats(_ context.Context, nick string, stats map[string]int) error {
	f.notebook[nick] = stats
	return nil
}

func (f *fakeStore) RunSQLMaintenance(context.Context) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parse(t *testing.T, text string, senderID int64) (*parser.Result, *parser.GroupResult) {
	t.Helper()
	p := parser.New(world.New(), testLogger())
	return p.Parse(&parser.Message{
		ID:       1,
		Text:     text,
		SenderID: senderID,
		Date:     time.Date(2026, 6, 21, 15, 30, 0, 0, time.UTC),
	})
}

func TestPlayerUpdater_SavesProfile(t *testing.T) {
	store := newFakeStore()
	u := NewPlayerUpdater(testLogger(), store)

	res, _ := parse(t, "📟 Пип-бой\n👤 Ivan\n🤟 Банда: TestGang\n❤️ Здоровье: 100/150", 0)
	require.NoError(t, u.HandlePlayer(context.Background(), res))

	require.Len(t, store.players, 1)
	p := store.players[0]
	assert.Equal(t, "Ivan", p.Nickname)
	assert.Equal(t, 150, p.MaxHP)
	require.True(t, p.Gang.Valid)
	assert.Equal(t, "TestGang", p.Gang.String)
	assert.False(t, p.TelegramID.Valid)
}

func TestPlayerUpdater_RaidWithProfileMarksAttendance(t *testing.T) {
	store := newFakeStore()
	u := NewPlayerUpdater(testLogger(), store)

	res, _ := parse(t, "📟 Пип-бой\n👤 Ivan\n📍 12км ⚔️Рейд\nРейд в 14:00", 0)
	require.NotNil(t, res.Profile)
	require.NotNil(t, res.Raid)
	require.NoError(t, u.HandlePlayer(context.Background(), res))

	require.Len(t, store.raids, 1)
	raidTime := store.raids[0].Time
	assert.Equal(t, []string{"Ivan"}, store.attendance[raidTime])
}

func TestPlayerUpdater_ReplacesStockForKnownSender(t *testing.T) {
	store := newFakeStore()
	u := NewPlayerUpdater(testLogger(), store)

	res, _ := parse(t, "🎒 Рюкзак:\n▫️ Доска (x2)", 555)
	require.NoError(t, u.HandlePlayer(context.Background(), res))

	require.Len(t, store.stock[555], 1)
	assert.Equal(t, "Доска", store.stock[555][0].Name)
	assert.Equal(t, 2, store.stock[555][0].Amount)
}

func TestPlayerUpdater_SkipsStockWithoutSender(t *testing.T) {
	store := newFakeStore()
	u := NewPlayerUpdater(testLogger(), store)

	res, _ := parse(t, "🎒 Рюкзак:\n▫️ Доска", 0)
	require.NoError(t, u.HandlePlayer(context.Background(), res))
	assert.Empty(t, store.stock)
}

func TestGroupUpdater_SavesGangAndRoster(t *testing.T) {
	store := newFakeStore()
	u := NewGroupUpdater(testLogger(), store)

	_, grp := parse(t, "🤟 Банда: Батары\n👑 Ivan\n├👤 Ivan 🟢 👂3 📍12км\n└👤 Petr 🔴 👂1 📍5км", 0)
	require.NotNil(t, grp.Gang)
	require.NoError(t, u.HandleGroup(context.Background(), grp))

	require.Len(t, store.groups, 1)
	assert.Equal(t, database.GroupKindGang, store.groups[0].Kind)
	assert.Equal(t, "Батары", store.groups[0].Name)

	members := store.members[1]
	require.Len(t, members, 2)
	assert.Equal(t, "Ivan", members[0].Nick)
	assert.Equal(t, 3, members[0].Ears)
}

func TestRegistry_IsolatesListenerFailures(t *testing.T) {
	store := newFakeStore()
	store.failUpsert = true

	reg := NewRegistry(testLogger())
	reg.RegisterPlayer(NewPlayerUpdater(testLogger(), store))

	res, grp := parse(t, "📟 Пип-бой\n👤 Ivan\n❤️ Здоровье: 10/10", 0)
	// Publish must not propagate the failure.
	reg.Publish(context.Background(), res, grp)
}
