package store

import (
	"sort"
	"sync"

	"github.com/desertthunder/farewell/internal/models"
)

// MemStore implements [Storage] with process-memory maps.
//
// Each record kind has its own id counter, starting at 1 and incremented on
// every create regardless of deletes, so ids are never reused. All methods are
// safe for concurrent use; the HTTP server handles requests on separate
// goroutines, so the mutex is load-bearing, not decorative.
type MemStore struct {
	mu           sync.RWMutex
	users        map[int]models.User
	persons      map[int]models.Person
	userNextID   int
	personNextID int
}

// NewMemStore creates an empty MemStore. Callers that want the demo fixture
// (admin credential plus three sample persons) seed it with [Seed].
func NewMemStore() *MemStore {
	return &MemStore{
		users:        map[int]models.User{},
		persons:      map[int]models.Person{},
		userNextID:   1,
		personNextID: 1,
	}
}

// GetUser returns the user with the given id.
func (s *MemStore) GetUser(id int) (models.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok, nil
}

// GetUserByUsername scans users in ascending id order and returns the first
// match. The oldest record wins when usernames collide.
func (s *MemStore) GetUserByUsername(username string) (models.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if s.users[id].Username == username {
			return s.users[id], true, nil
		}
	}
	return models.User{}, false, nil
}

// CreateUser assigns the next user id and stores the credential. Username
// uniqueness is not enforced here.
func (s *MemStore) CreateUser(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{ID: s.userNextID, Username: username, Password: password}
	s.users[user.ID] = user
	s.userNextID++
	return user, nil
}

// GetAllPersons returns a snapshot of every person. Ids are monotonic and
// never reused, so ascending id order is insertion order.
func (s *MemStore) GetAllPersons() ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.persons))
	for id := range s.persons {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	persons := make([]models.Person, 0, len(ids))
	for _, id := range ids {
		persons = append(persons, s.persons[id])
	}
	return persons, nil
}

// GetPerson returns the person with the given id.
func (s *MemStore) GetPerson(id int) (models.Person, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	person, ok := s.persons[id]
	return person, ok, nil
}

// CreatePerson assigns the next person id and stores the record.
func (s *MemStore) CreatePerson(input models.PersonInput) (models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	person := input.Person(s.personNextID)
	s.persons[person.ID] = person
	s.personNextID++
	return person, nil
}

// UpdatePerson merges the patch over a copy of the existing record and stores
// the merged value. Absent ids create nothing and leave the store untouched.
func (s *MemStore) UpdatePerson(id int, patch models.PersonPatch) (models.Person, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	person, ok := s.persons[id]
	if !ok {
		return models.Person{}, false, nil
	}

	merged := patch.Apply(person)
	s.persons[id] = merged
	return merged, true, nil
}

// DeletePerson removes the record if present. The freed id is never reused
// because the counter only moves forward.
func (s *MemStore) DeletePerson(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.persons[id]; !ok {
		return false, nil
	}
	delete(s.persons, id)
	return true, nil
}
