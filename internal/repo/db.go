package repo

import (
	"fmt"

	"LabStore/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const (
	TableInventory = "inventory"
	TableArchived  = "archived"
)

// InitDB открывает БД и накатывает схему. Непустой dsn — Postgres,
// иначе файл SQLite (драйвер modernc, без cgo).
func InitDB(dsn, sqlitePath string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn != "" {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: sqlitePath}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт обе таблицы из одной модели. Уникальность uniqueId
// действует только среди активных записей, поэтому индекс вешается
// только на inventory.
func Migrate(db *gorm.DB) error {
	if err := db.Table(TableInventory).AutoMigrate(&model.Item{}); err != nil {
		return fmt.Errorf("migrate inventory: %w", err)
	}
	if err := db.Table(TableArchived).AutoMigrate(&model.Item{}); err != nil {
		return fmt.Errorf("migrate archived: %w", err)
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_inventory_unique_id ON inventory ("uniqueId")`).Error; err != nil {
		return fmt.Errorf("create unique index: %w", err)
	}
	return nil
}
