package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// Query describes a filtered, ordered and optionally windowed read.
type Query struct {
	Joins  string
	Where  string
	Args   []any
	Order  string
	Limit  int
	Offset int
}

// Cascade names dependent rows removed together with their parent. Where
// refers to the parent id as @id.
type Cascade struct {
	Model any
	Where string
}

type GormDB struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormDB {
	return &GormDB{
		DB: db,
	}
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return New(db), nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records only when their table is still empty.
func (f *GormDB) Seed(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Addr().Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", translate(err))
	}
	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
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

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *GormDB) Find(ctx context.Context, q Query, dest any) error {
	tx := f.scoped(ctx, q)
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("find records: %w", err)
	}
	return nil
}

func (f *GormDB) Count(ctx context.Context, model any, q Query) (int64, error) {
	var count int64
	if err := f.scoped(ctx, q).Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// UpdateColumns writes only the given columns of the row with the given id.
func (f *GormDB) UpdateColumns(ctx context.Context, model any, id string, values map[string]any) error {
	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if tx.Error != nil {
		return fmt.Errorf("update record %q: %w", id, translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) DeleteBy(ctx context.Context, model any, q Query) (int64, error) {
	if q.Where == "" {
		return 0, errors.New("delete without condition is not allowed")
	}

	tx := f.DB.WithContext(ctx).Where(q.Where, q.Args...).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteCascade removes the dependents and then the row itself in one transaction.
func (f *GormDB) DeleteCascade(ctx context.Context, model any, id string, dependents ...Cascade) error {
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range dependents {
			if err := tx.Where(dep.Where, sql.Named("id", id)).Delete(dep.Model).Error; err != nil {
				return fmt.Errorf("delete dependents of %q: %w", id, err)
			}
		}

		res := tx.Where("id = ?", id).Delete(model)
		if res.Error != nil {
			return fmt.Errorf("delete record %q: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (f *GormDB) scoped(ctx context.Context, q Query) *gorm.DB {
	tx := f.DB.WithContext(ctx)
	if q.Joins != "" {
		tx = tx.Joins(q.Joins)
	}
	if q.Where != "" {
		tx = tx.Where(q.Where, q.Args...)
	}
	return tx
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}
