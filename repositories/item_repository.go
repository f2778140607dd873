package repositories

import (
	"context"
	"errors"
	"fmt"

	"bike-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrItemExists    = errors.New("item with this id already exists")
	ErrBuildingQuery = errors.New("building query failed")
)

const uniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type ItemRepository struct {
	db DB
}

func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context, normalized string) ([]models.Item, error) {
	q, err := buildListQuery(normalized)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q.sql, q.args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Price, &item.Image); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int) (*models.Item, error) {
	q, err := buildGetQuery(id)
	if err != nil {
		return nil, err
	}

	var item models.Item
	err = r.db.QueryRow(ctx, q.sql, q.args...).Scan(&item.ID, &item.Name, &item.Type, &item.Price, &item.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item models.Item) error {
	q, err := buildInsertQuery(item)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, q.sql, q.args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrItemExists
		}
		return fmt.Errorf("insert item %d: %w", item.ID, err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item models.Item) error {
	q, err := buildUpdateQuery(item)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, q.sql, q.args...)
	if err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	q, err := buildDeleteQuery(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, q.sql, q.args...)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	q, err := buildCountQuery()
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, q.sql, q.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

// InsertMany writes items whose ids are not taken yet and reports how many
// rows were inserted.
func (r *ItemRepository) InsertMany(ctx context.Context, items []models.Item) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	q, err := buildInsertIgnoreQuery(items)
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, q.sql, q.args...)
	if err != nil {
		return 0, fmt.Errorf("insert items: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
