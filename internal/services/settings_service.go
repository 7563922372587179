package services

import (
	"context"
	"errors"
	"strings"

	"github.com/joshua-takyi/stretch/internal/models"
)

const msgSettingsFieldsRequired = "Please fill in all fields"

type SettingsService struct {
	settingsRepo models.SettingsRepo
}

func NewSettingsService(settingsRepo models.SettingsRepo) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// Current returns the site settings, inserting the defaults first if the row
// has gone missing. created reports whether that happened.
func (ss *SettingsService) Current(ctx context.Context) (settings *models.SiteSettings, created bool, err error) {
	settings, err = ss.settingsRepo.GetSettings(ctx)
	if err == nil {
		return settings, false, nil
	}
	if !errors.Is(err, models.ErrSettingsNotFound) {
		return nil, false, err
	}

	created, err = ss.settingsRepo.EnsureDefaultSettings(ctx)
	if err != nil {
		return nil, false, err
	}

	settings, err = ss.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, false, err
	}

	return settings, created, nil
}

// Update rejects blank fields without touching the row.
func (ss *SettingsService) Update(ctx context.Context, input models.SiteSettings) (*models.SiteSettings, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	if err := models.Validate.Struct(input); err != nil {
		return nil, fromValidator(err, msgSettingsFieldsRequired)
	}

	if err := ss.settingsRepo.UpdateSettings(ctx, input.Name, input.Description); err != nil {
		return nil, err
	}

	input.ID = models.SettingsID
	return &input, nil
}
