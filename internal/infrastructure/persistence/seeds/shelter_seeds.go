package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"fanimal/internal/infrastructure/persistence/models"
	"fanimal/internal/shared/logger"
	"fanimal/internal/shared/utils"
)

type shelterFixture struct {
	Name        string `yaml:"name" json:"name" validate:"required,max=255"`
	Description string `yaml:"description" json:"description"`
	Address     string `yaml:"address" json:"address" validate:"required"`
}

type shelterFixtureFile struct {
	Shelters []shelterFixture `yaml:"shelters"`
}

// SeedShelters loads shelter fixtures from a YAML file and inserts the
// ones that do not exist yet. Existing shelters are left untouched so the
// seed can run repeatedly.
func SeedShelters(db *gorm.DB, file string, ownerID uint, log logger.Interface) error {
	if file == "" {
		log.Debugw("no shelter fixture file configured, skipping shelter seed")
		return nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read shelter fixture file: %w", err)
	}

	var fixtures shelterFixtureFile
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("failed to parse shelter fixture file: %w", err)
	}

	created := 0
	for _, fixture := range fixtures.Shelters {
		if err := utils.ValidateStruct(fixture); err != nil {
			return fmt.Errorf("invalid shelter fixture in %s: %w", file, err)
		}

		shelter := models.ShelterModel{
			Name:        fixture.Name,
			Description: fixture.Description,
			Address:     fixture.Address,
			OwnerID:     ownerID,
			Version:     1,
		}

		result := db.Where(models.ShelterModel{Name: fixture.Name}).FirstOrCreate(&shelter)
		if result.Error != nil {
			return fmt.Errorf("failed to seed shelter %q: %w", fixture.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
	}

	log.Infow("shelter seed completed",
		"fixtures", len(fixtures.Shelters),
		"created", created)

	return nil
}
