package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"recircleBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

// Item rows are always read together with the owner's public profile,
// mirroring the nested owner object in the JSON representation.
const itemSelect = `
        SELECT i.id, i.title, i.description, i.owner_id, i.category, i.item_type,
               i.image, i.location, i.is_available, i.created_at, i.updated_at,
               u.id, u.username, u.email, u.bio, u.location, u.phone_number, u.created_at
        FROM items i
        JOIN users u ON u.id = i.owner_id
`

func scanItem(scanner interface{ Scan(...any) error }) (models.Item, error) {
	var item models.Item
	err := scanner.Scan(
		&item.ID, &item.Title, &item.Description, &item.OwnerID, &item.Category, &item.ItemType,
		&item.Image, &item.Location, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
		&item.Owner.ID, &item.Owner.Username, &item.Owner.Email, &item.Owner.Bio,
		&item.Owner.Location, &item.Owner.PhoneNumber, &item.Owner.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        INSERT INTO items (title, description, owner_id, category, item_type, location, is_available, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
        RETURNING id
    `
	now := time.Now().UTC()
	err := r.DB.QueryRowContext(ctx, query,
		item.Title, item.Description, item.OwnerID, item.Category, item.ItemType,
		item.Location, item.IsAvailable, now,
	).Scan(&item.ID)
	if err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	query := itemSelect + ` WHERE i.id = $1`
	return scanItem(r.DB.QueryRowContext(ctx, query, id))
}

// GetItems returns listings newest first.
func (r *ItemRepository) GetItems(ctx context.Context, limit, offset int) ([]models.Item, error) {
	query := itemSelect + ` ORDER BY i.created_at DESC LIMIT $1 OFFSET $2`
	return r.queryItems(ctx, query, limit, offset)
}

// GetAvailableItemsByOwner returns the owner's currently available
// listings, newest first.
func (r *ItemRepository) GetAvailableItemsByOwner(ctx context.Context, ownerID int) ([]models.Item, error) {
	query := itemSelect + ` WHERE i.owner_id = $1 AND i.is_available = TRUE ORDER BY i.created_at DESC`
	return r.queryItems(ctx, query, ownerID)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        UPDATE items
        SET title = $1, description = $2, category = $3, item_type = $4,
            location = $5, is_available = $6, updated_at = $7
        WHERE id = $8
    `
	result, err := r.DB.ExecContext(ctx, query,
		item.Title, item.Description, item.Category, item.ItemType,
		item.Location, item.IsAvailable, time.Now().UTC(), item.ID,
	)
	if err != nil {
		return models.Item{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		return models.Item{}, models.ErrItemNotFound
	}

	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) UpdateItemImage(ctx context.Context, id int, image string) (models.Item, error) {
	query := `UPDATE items SET image = $1, updated_at = $2 WHERE id = $3`
	result, err := r.DB.ExecContext(ctx, query, image, time.Now().UTC(), id)
	if err != nil {
		return models.Item{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		return models.Item{}, models.ErrItemNotFound
	}

	return r.GetItemByID(ctx, id)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	query := `DELETE FROM items WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}
