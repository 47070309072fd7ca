package model

// All returns every table model; used by tests that build a schema with AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&BlogPostModel{},
		&GithubToolModel{},
		&CommentModel{},
		&SiteConfigModel{},
		&AchievementModel{},
		&UserActivityModel{},
		&SeoMetricModel{},
	}
}
