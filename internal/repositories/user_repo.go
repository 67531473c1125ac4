package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"recircleBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, username, email, password, bio, location, phone_number, created_at`

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.Bio, &user.Location, &user.PhoneNumber, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (username, email, password, bio, location, phone_number, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	user.CreatedAt = time.Now().UTC()
	err := r.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.Password, user.Bio, user.Location, user.PhoneNumber,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.DB.QueryRowContext(ctx, query, username))
}

func (r *UserRepository) GetUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY id
        LIMIT $1 OFFSET $2
    `
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.Password,
			&user.Bio, &user.Location, &user.PhoneNumber, &user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	query := `
        UPDATE users
        SET username = $1, email = $2, bio = $3, location = $4, phone_number = $5
        WHERE id = $6
    `
	result, err := r.DB.ExecContext(ctx, query,
		user.Username, user.Email, user.Bio, user.Location, user.PhoneNumber, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}

	return r.GetUserByID(ctx, user.ID)
}
