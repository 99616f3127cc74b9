package configs

import (
	"github.com/NebiyouChanie/sapore/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectionDB(source string) (*gorm.DB, error) {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey so unique-name conflicts are detectable.
	return gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.MenuItem{}, &entity.MenuSettings{},
		&entity.Reservation{},
	)
}
