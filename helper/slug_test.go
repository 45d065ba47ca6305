package helper

import (
	"fmt"
	"testing"

	"pms_server/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGenerateUniquePropertySlug(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Property{}))

	slug, err := GenerateUniquePropertySlug(db, "Lake Palace")
	require.NoError(t, err)
	assert.Equal(t, "lake-palace", slug)

	require.NoError(t, db.Create(&model.Property{Name: "Lake Palace", Slug: "lake-palace"}).Error)

	slug, err = GenerateUniquePropertySlug(db, "Lake Palace")
	require.NoError(t, err)
	assert.Equal(t, "lake-palace-1", slug)
}
