package store

import (
	"testing"

	"github.com/desertthunder/farewell/internal/models"
)

func testInput(name string) models.PersonInput {
	return models.PersonInput{
		Name:        name,
		Title:       "Engineer",
		Message:     "Bye",
		PhotoURL:    "https://x/y.jpg",
		MusicURL:    "https://x/y.mp3",
		MusicTitle:  "Song",
		MusicArtist: "Artist",
	}
}

func TestMemStorePersons(t *testing.T) {
	t.Run("CreatePerson assigns sequential ids from 1", func(t *testing.T) {
		s := NewMemStore()

		for i := 1; i <= 3; i++ {
			person, err := s.CreatePerson(testInput("P"))
			if err != nil {
				t.Fatalf("failed to create person: %v", err)
			}
			if person.ID != i {
				t.Errorf("expected id %d, got %d", i, person.ID)
			}
		}
	})

	t.Run("round-trip create then get", func(t *testing.T) {
		s := NewMemStore()

		created, err := s.CreatePerson(testInput("Jane Doe"))
		if err != nil {
			t.Fatalf("failed to create person: %v", err)
		}

		got, found, err := s.GetPerson(created.ID)
		if err != nil {
			t.Fatalf("failed to get person: %v", err)
		}
		if !found {
			t.Fatal("expected person to be found")
		}
		if got != created {
			t.Errorf("expected %+v, got %+v", created, got)
		}
	})

	t.Run("lookups on never-assigned ids report absence without mutating", func(t *testing.T) {
		s := NewMemStore()
		if _, err := s.CreatePerson(testInput("A")); err != nil {
			t.Fatalf("failed to create person: %v", err)
		}

		if _, found, _ := s.GetPerson(999); found {
			t.Error("expected get on unknown id to report absence")
		}
		if _, found, _ := s.UpdatePerson(999, models.PersonPatch{}); found {
			t.Error("expected update on unknown id to report absence")
		}
		if deleted, _ := s.DeletePerson(999); deleted {
			t.Error("expected delete on unknown id to report false")
		}

		persons, _ := s.GetAllPersons()
		if len(persons) != 1 {
			t.Errorf("store must not be mutated, got %d persons", len(persons))
		}

		// The counter must not have moved either.
		next, _ := s.CreatePerson(testInput("B"))
		if next.ID != 2 {
			t.Errorf("expected next id 2, got %d", next.ID)
		}
	})

	t.Run("UpdatePerson merges supplied fields over a copy", func(t *testing.T) {
		s := NewMemStore()
		created, _ := s.CreatePerson(testInput("A"))

		title := "C"
		merged, found, err := s.UpdatePerson(created.ID, models.PersonPatch{Title: &title})
		if err != nil {
			t.Fatalf("failed to update person: %v", err)
		}
		if !found {
			t.Fatal("expected person to be found")
		}

		if merged.Title != "C" {
			t.Errorf("expected merged title C, got %q", merged.Title)
		}
		if merged.Name != "A" {
			t.Errorf("expected name unchanged, got %q", merged.Name)
		}
		if merged.ID != created.ID {
			t.Errorf("id must be immutable, got %d", merged.ID)
		}

		stored, _, _ := s.GetPerson(created.ID)
		if stored != merged {
			t.Errorf("merged record must be stored, got %+v", stored)
		}
	})

	t.Run("DeletePerson is idempotent and ids are never reused", func(t *testing.T) {
		s := NewMemStore()
		created, _ := s.CreatePerson(testInput("A"))

		deleted, err := s.DeletePerson(created.ID)
		if err != nil {
			t.Fatalf("failed to delete person: %v", err)
		}
		if !deleted {
			t.Error("first delete should report true")
		}

		deleted, _ = s.DeletePerson(created.ID)
		if deleted {
			t.Error("second delete should report false")
		}

		if _, found, _ := s.GetPerson(created.ID); found {
			t.Error("deleted person should be gone")
		}

		// The freed id must not come back.
		next, _ := s.CreatePerson(testInput("B"))
		if next.ID != created.ID+1 {
			t.Errorf("expected id %d, got %d", created.ID+1, next.ID)
		}
	})

	t.Run("GetAllPersons returns insertion order", func(t *testing.T) {
		s := NewMemStore()
		for _, name := range []string{"A", "B", "C"} {
			if _, err := s.CreatePerson(testInput(name)); err != nil {
				t.Fatalf("failed to create person: %v", err)
			}
		}

		persons, err := s.GetAllPersons()
		if err != nil {
			t.Fatalf("failed to list persons: %v", err)
		}

		if len(persons) != 3 {
			t.Fatalf("expected 3 persons, got %d", len(persons))
		}
		for i, name := range []string{"A", "B", "C"} {
			if persons[i].Name != name {
				t.Errorf("position %d: expected %q, got %q", i, name, persons[i].Name)
			}
		}
	})
}

func TestMemStoreUsers(t *testing.T) {
	t.Run("CreateUser assigns sequential ids", func(t *testing.T) {
		s := NewMemStore()

		first, err := s.CreateUser("admin", "admin123")
		if err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
		if first.ID != 1 {
			t.Errorf("expected id 1, got %d", first.ID)
		}

		second, _ := s.CreateUser("other", "pw")
		if second.ID != 2 {
			t.Errorf("expected id 2, got %d", second.ID)
		}
	})

	t.Run("GetUser reports absence for unknown ids", func(t *testing.T) {
		s := NewMemStore()
		if _, found, _ := s.GetUser(42); found {
			t.Error("expected absence for unknown user id")
		}
	})

	t.Run("GetUserByUsername returns the oldest match", func(t *testing.T) {
		s := NewMemStore()
		first, _ := s.CreateUser("admin", "first")
		s.CreateUser("admin", "second")

		user, found, err := s.GetUserByUsername("admin")
		if err != nil {
			t.Fatalf("failed to look up user: %v", err)
		}
		if !found {
			t.Fatal("expected user to be found")
		}
		if user.ID != first.ID || user.Password != "first" {
			t.Errorf("expected oldest record to win, got %+v", user)
		}
	})
}

func TestSeed(t *testing.T) {
	t.Run("seeds admin and three sample persons", func(t *testing.T) {
		s := NewMemStore()
		if err := Seed(s, "admin", "admin123"); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		admin, found, _ := s.GetUserByUsername("admin")
		if !found {
			t.Fatal("expected seeded admin user")
		}
		if admin.ID != 1 || admin.Password != "admin123" {
			t.Errorf("unexpected admin record: %+v", admin)
		}

		persons, _ := s.GetAllPersons()
		if len(persons) != 3 {
			t.Fatalf("expected 3 seeded persons, got %d", len(persons))
		}
		if persons[0].Name != "Sarah Johnson" || persons[2].Name != "Maria Rodriguez" {
			t.Errorf("unexpected seed order: %v, %v", persons[0].Name, persons[2].Name)
		}

		// First post-seed create gets id 4.
		created, _ := s.CreatePerson(testInput("Jane Doe"))
		if created.ID != 4 {
			t.Errorf("expected id 4 after seeding, got %d", created.ID)
		}
	})

	t.Run("seeding twice does not duplicate the fixture", func(t *testing.T) {
		s := NewMemStore()
		if err := Seed(s, "admin", "admin123"); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		if err := Seed(s, "admin", "admin123"); err != nil {
			t.Fatalf("failed to reseed: %v", err)
		}

		persons, _ := s.GetAllPersons()
		if len(persons) != 3 {
			t.Errorf("expected 3 persons after reseed, got %d", len(persons))
		}
	})
}
