package controllers

import (
	"strconv"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/utils"
)

// uniqueSlug appends a numeric suffix until the slug is free for the
// given model. excludeID skips the record being renamed. The lookup is
// unscoped because the unique index on slug also covers soft-deleted
// rows.
func uniqueSlug(model interface{}, name string, excludeID uint) string {
	base := utils.Slugify(name)
	for i := 1; ; i++ {
		slug := slugCandidate(base, i)
		var count int64
		query := config.DB.Unscoped().Model(model).Where("slug = ?", slug)
		if excludeID > 0 {
			query = query.Where("id != ?", excludeID)
		}
		query.Count(&count)
		if count == 0 {
			return slug
		}
	}
}

func slugCandidate(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}
