package store

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/farewell/internal/models"
)

// SQLiteStore implements [Storage] over database/sql.
//
// Identity semantics match [MemStore]: both tables use INTEGER PRIMARY KEY
// AUTOINCREMENT, so ids stay monotonic and are never reused after a delete.
// Single-statement mutations rely on SQLite's implicit transaction; the
// read-merge-write in UpdatePerson runs in an explicit one.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore on an open connection. The caller is
// expected to have run migrations first.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetUser returns the user with the given id.
func (s *SQLiteStore) GetUser(id int) (models.User, bool, error) {
	row := s.db.QueryRow("SELECT id, username, password FROM users WHERE id = ?", id)

	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to query user: %w", err)
	}
	return user, true, nil
}

// GetUserByUsername returns the oldest user with the given username.
func (s *SQLiteStore) GetUserByUsername(username string) (models.User, bool, error) {
	row := s.db.QueryRow("SELECT id, username, password FROM users WHERE username = ? ORDER BY id ASC LIMIT 1", username)

	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to query user by username: %w", err)
	}
	return user, true, nil
}

// CreateUser inserts the credential and returns it with the assigned id.
func (s *SQLiteStore) CreateUser(username, password string) (models.User, error) {
	result, err := s.db.Exec("INSERT INTO users (username, password) VALUES (?, ?)", username, password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get inserted user id: %w", err)
	}
	return models.User{ID: int(id), Username: username, Password: password}, nil
}

// GetAllPersons returns every person in ascending id order.
func (s *SQLiteStore) GetAllPersons() ([]models.Person, error) {
	query := `
		SELECT id, name, title, message, photo_url, music_url, music_title, music_artist
		FROM persons
		ORDER BY id ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Title, &p.Message, &p.PhotoURL, &p.MusicURL, &p.MusicTitle, &p.MusicArtist); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return persons, nil
}

// GetPerson returns the person with the given id.
func (s *SQLiteStore) GetPerson(id int) (models.Person, bool, error) {
	query := `
		SELECT id, name, title, message, photo_url, music_url, music_title, music_artist
		FROM persons
		WHERE id = ?
	`

	var p models.Person
	err := s.db.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Title, &p.Message, &p.PhotoURL, &p.MusicURL, &p.MusicTitle, &p.MusicArtist)
	if err == sql.ErrNoRows {
		return models.Person{}, false, nil
	}
	if err != nil {
		return models.Person{}, false, fmt.Errorf("failed to query person: %w", err)
	}
	return p, true, nil
}

// CreatePerson inserts the record and returns it with the assigned id.
func (s *SQLiteStore) CreatePerson(input models.PersonInput) (models.Person, error) {
	query := `
		INSERT INTO persons (name, title, message, photo_url, music_url, music_title, music_artist)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query, input.Name, input.Title, input.Message, input.PhotoURL, input.MusicURL, input.MusicTitle, input.MusicArtist)
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to insert person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to get inserted person id: %w", err)
	}
	return input.Person(int(id)), nil
}

// UpdatePerson reads the existing record, merges the patch over it, and writes
// the merged row back, all in one transaction so concurrent patches cannot
// interleave. Absent ids write nothing.
func (s *SQLiteStore) UpdatePerson(id int, patch models.PersonPatch) (models.Person, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Person{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, name, title, message, photo_url, music_url, music_title, music_artist
		FROM persons
		WHERE id = ?
	`

	var person models.Person
	err = tx.QueryRow(query, id).Scan(&person.ID, &person.Name, &person.Title, &person.Message, &person.PhotoURL, &person.MusicURL, &person.MusicTitle, &person.MusicArtist)
	if err == sql.ErrNoRows {
		return models.Person{}, false, nil
	}
	if err != nil {
		return models.Person{}, false, fmt.Errorf("failed to query person: %w", err)
	}

	merged := patch.Apply(person)

	update := `
		UPDATE persons
		SET name = ?, title = ?, message = ?, photo_url = ?, music_url = ?, music_title = ?, music_artist = ?
		WHERE id = ?
	`

	result, err := tx.Exec(update, merged.Name, merged.Title, merged.Message, merged.PhotoURL, merged.MusicURL, merged.MusicTitle, merged.MusicArtist, merged.ID)
	if err != nil {
		return models.Person{}, false, fmt.Errorf("failed to update person: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return models.Person{}, false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return models.Person{}, false, nil
	}

	if err := tx.Commit(); err != nil {
		return models.Person{}, false, fmt.Errorf("failed to commit update: %w", err)
	}
	return merged, true, nil
}

// DeletePerson removes the row, reporting whether one was present.
func (s *SQLiteStore) DeletePerson(id int) (bool, error) {
	result, err := s.db.Exec("DELETE FROM persons WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows > 0, nil
}
