package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/PersonalLedger/internal/dbx"
	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
	q  dbx.DBTX
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db, q: db}
}

// InTx hands fn a repository whose queries all run on one transaction.
func (r *CategoryRepository) InTx(ctx context.Context, fn func(repo domain.CategoryRepository) error) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(&CategoryRepository{db: r.db, q: tx})
	})
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.q.QueryRowContext(ctx, query, category.ID, category.Name, category.UserID).
		Scan(&category.CreatedAt, &category.UpdatedAt)
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, user_id, created_at, updated_at FROM categories WHERE user_id = $1 ORDER BY name ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.UserID, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.findByID(ctx, id, "")
}

func (r *CategoryRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Category, error) {
	return r.findByID(ctx, id, " FOR UPDATE")
}

func (r *CategoryRepository) findByID(ctx context.Context, id, suffix string) (*domain.Category, error) {
	query := `SELECT id, name, user_id, created_at, updated_at FROM categories WHERE id = $1` + suffix

	var category domain.Category
	err := r.q.QueryRowContext(ctx, query, id).
		Scan(&category.ID, &category.Name, &category.UserID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE categories SET name = $1, updated_at = NOW() WHERE id = $2`,
		category.Name, category.ID)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *CategoryRepository) CountTransactions(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}
