package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/taskmate-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the indexes backing newest-first listings.
// Uniqueness and foreign key indexes come from the model tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		{&models.Task{}, "tasks", "idx_tasks_created_at", "created_at"},
		{&models.Task{}, "tasks", "idx_tasks_status", "status"},
		{&models.Completion{}, "completions", "idx_completions_created_at", "created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
