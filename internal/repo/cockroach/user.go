package cockroach

import (
	"database/sql"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type User struct {
	db *sqlx.DB
}

func NewUser(db *sqlx.DB) repo.User {
	return &User{
		db: db,
	}
}

func (u *User) AddUser(user *entity.User) (int, error) {
	// Проверяем, существует ли пользователь с таким email
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM "user" WHERE email = $1)`
	err := u.db.QueryRow(query, user.Email).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, repo.ErrEmailExists
	}

	var userID int
	query = `INSERT INTO "user" (name, email, password_hash, role, created_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err = u.db.QueryRow(query, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (u *User) GetUser(userID int) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, name, email, password_hash, role, created_at FROM "user" WHERE id = $1`
	err := u.db.Get(&user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *User) GetUserByEmail(email string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, name, email, password_hash, role, created_at FROM "user" WHERE email = $1`
	err := u.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *User) GetUsers(ids []int, offset, limit int) ([]*entity.User, error) {
	builder := sq.Select("id", "name", "email", "password_hash", "role", "created_at").
		From(`"user"`).
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
	if len(ids) > 0 {
		builder = builder.Where(sq.Eq{"id": ids})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0)
	if err := u.db.Select(&users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *User) UserExists(userID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM "user" WHERE id = $1)`
	err := u.db.QueryRow(query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (u *User) DeleteUser(userID int) error {
	query := `DELETE FROM "user" WHERE id = $1`
	result, err := u.db.Exec(query, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repo.ErrUserNotFound
	}

	return nil
}
