package records

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// Every pooled connection would get its own in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestDBRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db))

	recs := []Record{
		{ID: "zz:last_id_first_row", CraftType: CraftShaped, ResItem: "<zz:item>", Amount: 1, CraftRaw: "[<a:b>]"},
		{ID: "aa:first_id_second_row", CraftType: CraftFurnace, ResItem: "<aa:item>", Amount: 2, CraftRaw: "<a:c>"},
	}
	require.NoError(t, SaveDB(ctx, db, recs))

	loaded, err := LoadDB(ctx, db)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "zz:last_id_first_row", loaded[0].ID, "stored order survives")
	assert.Equal(t, 2, loaded[1].Amount)

	// Saving again upserts instead of failing on the primary key.
	recs[0].CraftRaw = "[<a:d>]"
	require.NoError(t, SaveDB(ctx, db, recs))
	loaded, err = LoadDB(ctx, db)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "[<a:d>]", loaded[0].CraftRaw)

	require.NoError(t, SaveMods(ctx, db, []Mod{{ID: "minecraft", Name: "Minecraft", Version: "1.12.2"}}))
	var mods []Mod
	require.NoError(t, db.Find(&mods).Error)
	assert.Len(t, mods, 1)

	assert.NoError(t, SaveDB(ctx, db, nil))
}

func TestUpsertAndDeleteDB(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, SaveDB(ctx, db, sampleRecords()[:3]))

	// Upsert keeps the given seq instead of renumbering.
	fixed := Record{ID: "minecraft:torch", CraftType: CraftShaped, ResItem: "<minecraft:torch>", Amount: 4, CraftRaw: "[[<minecraft:coal:*>], [<ore:stickWood>]]", Seq: 7}
	require.NoError(t, UpsertDB(ctx, db, []Record{fixed}))

	var got Record
	require.NoError(t, db.First(&got, "id = ?", "minecraft:torch").Error)
	assert.Equal(t, 7, got.Seq)
	assert.Equal(t, "[[<minecraft:coal:*>], [<ore:stickWood>]]", got.CraftRaw)

	n, err := DeleteDB(ctx, db, []string{"minecraft:torch", "missing:id"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	loaded, err := LoadDB(ctx, db)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)

	n, err = DeleteDB(ctx, db, nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, UpsertDB(ctx, db, nil))
}

func TestLoadDB_Error(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `recipes` ORDER BY seq ASC,id ASC")).
		WillReturnError(assert.AnError)

	_, err = LoadDB(context.Background(), db)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
