package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetwatch-service/internal/domain/repository"
)

// GormStorage implements repository.Storage against a relational database.
// Unique fields are enforced both by a lookup inside the write transaction
// and by unique indexes.
type GormStorage struct {
	db   *gorm.DB
	opts options
}

var _ repository.Storage = (*GormStorage)(nil)

// NewGormStorage creates a new GORM backed storage
func NewGormStorage(db *gorm.DB, opts ...Option) *GormStorage {
	return &GormStorage{
		db:   db,
		opts: buildOptions(opts),
	}
}

// Migrate creates or updates every table used by the storage
func (s *GormStorage) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// translateError maps driver errors onto the repository sentinels
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, repository.ErrDuplicateKey),
		errors.Is(err, repository.ErrBackendUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicateKey
	default:
		return fmt.Errorf("%w: %v", repository.ErrBackendUnavailable, err)
	}
}

// uniqueField names a column whose value may appear on one row only
type uniqueField[E any] struct {
	column string
	value  func(E) string
}

func unique[E any](column string, value func(E) string) uniqueField[E] {
	return uniqueField[E]{column: column, value: value}
}

// checkUnique fails with ErrDuplicateKey when another row already holds one
// of the unique values of e. selfID is excluded so a row can keep its own values.
func checkUnique[M, E any](tx *gorm.DB, e E, selfID int64, fields []uniqueField[E]) error {
	for _, f := range fields {
		var count int64
		err := tx.Model(new(M)).
			Where(f.column+" = ? AND id <> ?", f.value(e), selfID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s %q", repository.ErrDuplicateKey, f.column, f.value(e))
		}
	}
	return nil
}

// findOne loads the first row matching the condition
func findOne[M, E any](ctx context.Context, db *gorm.DB, conv func(M) E, query string, args ...interface{}) (*E, error) {
	var m M
	if err := db.WithContext(ctx).Where(query, args...).Order("id ASC").First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	e := conv(m)
	return &e, nil
}

// findAll loads every row the scope selects, in insertion order unless the
// scope orders first. Never returns a nil slice on success.
func findAll[M, E any](ctx context.Context, db *gorm.DB, conv func(M) E, scope func(*gorm.DB) *gorm.DB) ([]*E, error) {
	var models []M
	q := db.WithContext(ctx)
	if scope != nil {
		q = scope(q)
	}
	if err := q.Order("id ASC").Find(&models).Error; err != nil {
		return nil, translateError(err)
	}
	out := make([]*E, len(models))
	for i := range models {
		e := conv(models[i])
		out[i] = &e
	}
	return out, nil
}

// findRecent returns at most limit rows, newest column value first
func findRecent[M, E any](ctx context.Context, db *gorm.DB, conv func(M) E, column string, limit int) ([]*E, error) {
	if limit <= 0 {
		return []*E{}, nil
	}
	return findAll(ctx, db, conv, func(q *gorm.DB) *gorm.DB {
		return q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}).Limit(limit)
	})
}

// insert stores a new row and returns it with the database assigned id
func insert[M, E any](ctx context.Context, db *gorm.DB, e E, back func(E) M, conv func(M) E, fields ...uniqueField[E]) (*E, error) {
	m := back(e)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUnique[M](tx, e, 0, fields); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	out := conv(m)
	return &out, nil
}

// modify loads the row, applies the patch and saves the full record
func modify[M, E any](ctx context.Context, db *gorm.DB, id int64, apply func(E) E, back func(E) M, conv func(M) E, fields ...uniqueField[E]) (*E, error) {
	var out E
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current M
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}
		merged := apply(conv(current))
		if err := checkUnique[M](tx, merged, id, fields); err != nil {
			return err
		}
		updated := back(merged)
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		out = conv(updated)
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &out, nil
}
