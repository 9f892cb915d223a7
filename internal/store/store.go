package store

import (
	"github.com/desertthunder/farewell/internal/models"
)

// Storage defines the record access contract shared by the HTTP layer and the
// CLI. The boolean results report record presence; errors report backend
// failures only.
type Storage interface {
	// GetUser returns the user with the given id.
	GetUser(id int) (models.User, bool, error)
	// GetUserByUsername returns the first user whose username matches,
	// scanning in ascending id order. Uniqueness is not enforced, so on
	// duplicates the oldest record wins.
	GetUserByUsername(username string) (models.User, bool, error)
	// CreateUser assigns the next user id and stores the credential.
	CreateUser(username, password string) (models.User, error)
	// GetAllPersons returns a snapshot of every person in insertion order.
	GetAllPersons() ([]models.Person, error)
	// GetPerson returns the person with the given id.
	GetPerson(id int) (models.Person, bool, error)
	// CreatePerson assigns the next person id and stores the record.
	CreatePerson(input models.PersonInput) (models.Person, error)
	// UpdatePerson merges the patch over the existing record and stores the
	// result. Absent ids create nothing. The id never changes.
	UpdatePerson(id int, patch models.PersonPatch) (models.Person, bool, error)
	// DeletePerson removes the record, reporting whether one was present.
	// The id is never handed out again.
	DeletePerson(id int) (bool, error)
}
