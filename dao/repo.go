package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo holds the query helpers shared by every DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindByWhere returns the first match, or nil when nothing matches.
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	res := r.Db.WithContext(ctx).Where(where, args...).Limit(1).Find(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	return r.FindByWhere(ctx, "id = ?", id)
}

// Count counts rows matching where; an empty where counts the whole table.
func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	q := r.Db.WithContext(ctx).Model(new(T))
	if where != "" {
		q = q.Where(where, args...)
	}
	err := q.Count(&count).Error
	return count, err
}
