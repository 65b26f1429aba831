package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SchemaMigration records a migration that has been applied.
type SchemaMigration struct {
	Version   int `gorm:"primaryKey;autoIncrement:false"`
	Name      string
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

type migration struct {
	version int
	name    string
	up      func(tx *gorm.DB) error
}

// migrations are applied in order, each exactly once. New migrations are
// only ever appended.
var migrations = []migration{
	{1, "create tables", createTables},
	{2, "create indexes", createIndexes},
	{3, "store decimals as text", storeDecimalsAsText},
}

func createTables(tx *gorm.DB) error {
	for _, table := range Schema {
		if err := tx.Exec(table.CreateSQL()).Error; err != nil {
			return fmt.Errorf("creating table %s: %w", table.Name, err)
		}
	}
	return nil
}

func createIndexes(tx *gorm.DB) error {
	for _, table := range Schema {
		for _, statement := range table.IndexSQL() {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("creating index on %s: %w", table.Name, err)
			}
		}
	}
	return nil
}

// storeDecimalsAsText rebuilds all tables from Schema, which declares
// decimal columns as TEXT. Columns declared DECIMAL have numeric affinity
// and SQLite keeps only 15 significant digits of their values.
func storeDecimalsAsText(tx *gorm.DB) error {
	for _, table := range Schema {
		err := tx.Exec(fmt.Sprintf("CREATE TABLE `%s` AS SELECT * FROM `%s`", copyName(table.Name), table.Name)).Error
		if err != nil {
			return fmt.Errorf("copying table %s: %w", table.Name, err)
		}
	}

	// Referencing tables are dropped first
	for i := len(Schema) - 1; i >= 0; i-- {
		if err := tx.Exec(fmt.Sprintf("DROP TABLE `%s`", Schema[i].Name)).Error; err != nil {
			return fmt.Errorf("dropping table %s: %w", Schema[i].Name, err)
		}
	}

	if err := createTables(tx); err != nil {
		return err
	}

	if err := createIndexes(tx); err != nil {
		return err
	}

	for _, table := range Schema {
		columns := make([]string, 0, len(table.Columns))
		for _, c := range table.ColumnNames() {
			columns = append(columns, fmt.Sprintf("`%s`", c))
		}
		list := strings.Join(columns, ", ")

		err := tx.Exec(fmt.Sprintf("INSERT INTO `%s` (%s) SELECT %s FROM `%s`", table.Name, list, list, copyName(table.Name))).Error
		if err != nil {
			return fmt.Errorf("restoring table %s: %w", table.Name, err)
		}

		if err := tx.Exec(fmt.Sprintf("DROP TABLE `%s`", copyName(table.Name))).Error; err != nil {
			return fmt.Errorf("dropping copy of table %s: %w", table.Name, err)
		}
	}

	return nil
}

func copyName(table string) string {
	return table + "_copy"
}

// LatestSchemaVersion is the schema version after all migrations ran.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// SchemaVersion returns the version of the last migration applied to the database.
func SchemaVersion(db *gorm.DB) (int, error) {
	var version int
	err := db.Model(&SchemaMigration{}).Select("COALESCE(MAX(version), 0)").Scan(&version).Error
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// Migrate brings the schema to the latest version.
//
// It must run before any query is executed. Every migration runs in its own
// transaction together with the bookkeeping row, so a failed migration leaves
// the schema at the previous version.
func Migrate(db *gorm.DB) error {
	if !db.Migrator().HasTable(&SchemaMigration{}) {
		if err := db.Migrator().CreateTable(&SchemaMigration{}); err != nil {
			return fmt.Errorf("error during DB migration: %w", err)
		}
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return err
			}

			return tx.Create(&SchemaMigration{
				Version:   m.version,
				Name:      m.name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("error during DB migration %d (%s): %w", m.version, m.name, err)
		}

		log.Info().Int("version", m.version).Str("name", m.name).Msg("Database migration applied")
	}

	return nil
}
