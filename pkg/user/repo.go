package user

import (
	"database/sql"
	"errors"
)

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(user *User) error {
	if user.Role == "" {
		user.Role = RoleUser
	}
	_, err := r.DB.Exec(
		"INSERT INTO users (id, username, password, role) VALUES (?, ?, ?, ?)",
		user.ID, user.Username, user.Password, user.Role,
	)
	if err != nil {
		return err
	}
	return nil
}

func (r *MySQLRepo) FindByUsername(username string) (*User, error) {
	var u User
	err := r.DB.QueryRow(
		"SELECT id, username, password, role FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Role)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &u, nil
}
