package seeders

import (
	"os"
	"testing"

	"vaka.link/configs/configslog"
	"vaka.link/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Havuzdaki her bağlantı ayrı bir in-memory veritabanı görür
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Organization{},
		&models.Tag{},
		&models.Case{},
		&models.Admin{},
	))
	return db
}

func TestSeedDefaultAdminCreatesAccount(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDefaultAdmin(db))

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", models.DefaultAdminUsername).First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte(models.DefaultAdminPassword)))
}

func TestSeedDefaultAdminSkipsWhenAdminExists(t *testing.T) {
	db := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("baska-parola"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{Username: "mevcut", PasswordHash: string(hash)}).Error)

	require.NoError(t, SeedDefaultAdmin(db))

	// Herhangi bir admin varken varsayılan hesap eklenmez
	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDemoData(db))
	require.NoError(t, SeedDemoData(db))

	var orgCount, tagCount, caseCount int64
	require.NoError(t, db.Model(&models.Organization{}).Count(&orgCount).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	require.NoError(t, db.Model(&models.Case{}).Count(&caseCount).Error)

	assert.EqualValues(t, len(demoOrganizations), orgCount)
	assert.EqualValues(t, len(demoTags), tagCount)
	assert.EqualValues(t, len(demoCases), caseCount)
}

func TestSeedDemoDataLinksCasesToOrganizationsAndTags(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDemoData(db))

	var c models.Case
	require.NoError(t, db.Preload("Organization").Preload("Tags").
		Where("name = ?", "Aile Bütçesi Planlama").First(&c).Error)

	require.NotNil(t, c.Organization)
	assert.Equal(t, "Ziraat Bankası", c.Organization.Name)
	assert.Len(t, c.Tags, 3)
	assert.Equal(t, ".pdf", c.FileType)
	assert.NotEmpty(t, c.FilePath)
}
