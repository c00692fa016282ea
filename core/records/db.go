package records

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 500

// Migrate creates or updates the recipes and mods tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&Record{}, &Mod{}); err != nil {
		return fmt.Errorf("failed to migrate record tables: %w", err)
	}
	return nil
}

// SaveDB upserts recs into the recipes table. Seq is rewritten from the slice order so
// LoadDB returns the rows in the same order.
func SaveDB(ctx context.Context, db *gorm.DB, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	rows := make([]Record, len(recs))
	for i, r := range recs {
		r.Seq = i
		rows[i] = r
	}
	return UpsertDB(ctx, db, rows)
}

// UpsertDB upserts recs keeping their Seq as given.
func UpsertDB(ctx context.Context, db *gorm.DB, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(recs, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// DeleteDB removes the rows with the given ids and returns how many were deleted.
func DeleteDB(ctx context.Context, db *gorm.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Where("id IN ?", ids).Delete(&Record{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete records: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// LoadDB reads every row of the recipes table in stored order.
func LoadDB(ctx context.Context, db *gorm.DB) ([]Record, error) {
	var recs []Record
	if err := db.WithContext(ctx).Order("seq ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return recs, nil
}

// SaveMods upserts mods into the mods table.
func SaveMods(ctx context.Context, db *gorm.DB, mods []Mod) error {
	if len(mods) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(mods, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to save mods: %w", err)
	}
	return nil
}
