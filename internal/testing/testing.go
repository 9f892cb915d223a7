// package testing contains shared testing utilities
package testing

import (
	"errors"

	"github.com/desertthunder/farewell/internal/models"
)

// FailingStorage implements store.Storage with every method returning Err,
// for exercising the HTTP layer's 500 paths.
type FailingStorage struct {
	Err error
}

// NewFailingStorage creates a FailingStorage with a generic error.
func NewFailingStorage() *FailingStorage {
	return &FailingStorage{Err: errors.New("storage backend failure")}
}

func (f *FailingStorage) GetUser(id int) (models.User, bool, error) {
	return models.User{}, false, f.Err
}

func (f *FailingStorage) GetUserByUsername(username string) (models.User, bool, error) {
	return models.User{}, false, f.Err
}

func (f *FailingStorage) CreateUser(username, password string) (models.User, error) {
	return models.User{}, f.Err
}

func (f *FailingStorage) GetAllPersons() ([]models.Person, error) {
	return nil, f.Err
}

func (f *FailingStorage) GetPerson(id int) (models.Person, bool, error) {
	return models.Person{}, false, f.Err
}

func (f *FailingStorage) CreatePerson(input models.PersonInput) (models.Person, error) {
	return models.Person{}, f.Err
}

func (f *FailingStorage) UpdatePerson(id int, patch models.PersonPatch) (models.Person, bool, error) {
	return models.Person{}, false, f.Err
}

func (f *FailingStorage) DeletePerson(id int) (bool, error) {
	return false, f.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
