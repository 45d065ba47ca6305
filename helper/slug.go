package helper

import (
	"fmt"

	"pms_server/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniquePropertySlug slugifies the property name and appends a
// numeric suffix until the slug is free.
func GenerateUniquePropertySlug(db *gorm.DB, name string) (string, error) {
	base := slug.Make(name)
	candidate := base

	for i := 1; ; i++ {
		var count int64
		if err := db.Model(&model.Property{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
