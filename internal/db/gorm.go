package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// CreateOne inserts a single record. A uniqueness-constraint violation
// surfaces as ErrDuplicate so callers can treat the insert as "already
// exists" instead of a fatal error.
func (f *PostgresDB) CreateOne(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) ListBy(ctx context.Context, column string, value any, orderBy string, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) CountBy(ctx context.Context, column string, value any, model any) (int64, error) {
	var count int64
	err := f.DB.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting records by %q: %w", column, err)
	}
	return count, nil
}

func (f *PostgresDB) ExistsBy(ctx context.Context, column string, value any, model any) (bool, error) {
	count, err := f.CountBy(ctx, column, value, model)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (f *PostgresDB) UpdateOneBy(ctx context.Context, column string, value any, model any, updates map[string]any) error {
	tx := f.DB.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("updating record by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllBy removes every record matching the column and reports how many
// rows went away.
func (f *PostgresDB) DeleteAllBy(ctx context.Context, column string, value any, model any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}
