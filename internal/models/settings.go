package models

// SettingsID is the primary key of the only site_settings row.
const SettingsID = 1

const (
	DefaultSiteName        = "Stretch Yoga"
	DefaultSiteDescription = "Yoga classes for all ages and abilities"
)

type SiteSettings struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name" form:"name" validate:"required"`
	Description string `db:"description" json:"description" form:"description" validate:"required"`
}

func DefaultSettings() SiteSettings {
	return SiteSettings{
		ID:          SettingsID,
		Name:        DefaultSiteName,
		Description: DefaultSiteDescription,
	}
}
