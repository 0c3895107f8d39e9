package services

import (
	"context"
	"testing"

	"vaka.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestCase(t *testing.T, db *gorm.DB, name string) *models.Case {
	t.Helper()
	c := &models.Case{
		Name:     name,
		FilePath: "uploads/test-" + name + ".pdf",
		FileType: ".pdf",
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestEnsureTagIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)
	ctx := context.Background()

	first, err := svc.EnsureTag(ctx, "finans")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := svc.EnsureTag(ctx, "finans")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := svc.EnsureTag(ctx, "yatırım")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestEnsureTagRejectsEmptyName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)

	_, err := svc.EnsureTag(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrTagNameRequired)
}

func TestSetCaseTagsReplacesExistingSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)
	ctx := context.Background()
	c := createTestCase(t, db, "vaka")

	require.NoError(t, svc.SetCaseTags(ctx, c.ID, []string{"a", "b"}))
	names, err := svc.GetTagsForCase(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names)

	// Önceki kümeden bağımsız tam değişim
	require.NoError(t, svc.SetCaseTags(ctx, c.ID, []string{"b", "c"}))
	names, err = svc.GetTagsForCase(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, names)

	// Eski etiket kaydı silinmez, sadece ilişki kalkar
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 3, tagCount)
}

func TestSetCaseTagsEmptyListClearsAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)
	ctx := context.Background()
	c := createTestCase(t, db, "vaka")

	require.NoError(t, svc.SetCaseTags(ctx, c.ID, []string{"a", "b"}))
	require.NoError(t, svc.SetCaseTags(ctx, c.ID, nil))

	names, err := svc.GetTagsForCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestSetCaseTagsNormalizesNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)
	ctx := context.Background()
	c := createTestCase(t, db, "vaka")

	// Boşluklu tekrarlar ve boş girdiler elenir
	require.NoError(t, svc.SetCaseTags(ctx, c.ID, []string{" a ", "a", "", "b"}))

	names, err := svc.GetTagsForCase(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestGetTagsForCaseWithoutTags(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)
	c := createTestCase(t, db, "vaka")

	names, err := svc.GetTagsForCase(context.Background(), c.ID)
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestGetAllTagsOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagServiceWithDB(db)
	ctx := context.Background()

	for _, name := range []string{"cc", "aa", "bb"} {
		_, err := svc.EnsureTag(ctx, name)
		require.NoError(t, err)
	}

	tags, err := svc.GetAllTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "aa", tags[0].Name)
	assert.Equal(t, "bb", tags[1].Name)
	assert.Equal(t, "cc", tags[2].Name)
}
