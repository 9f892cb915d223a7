package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func validInput() PersonInput {
	return PersonInput{
		Name:        "Jane Doe",
		Title:       "Engineer",
		Message:     "Bye",
		PhotoURL:    "https://x/y.jpg",
		MusicURL:    "https://x/y.mp3",
		MusicTitle:  "Song",
		MusicArtist: "Artist",
	}
}

func TestPersonInput(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts a complete payload", func(t *testing.T) {
			if fe := validInput().Validate(); fe != nil {
				t.Errorf("expected no field errors, got %v", fe)
			}
		})

		t.Run("requires every text field", func(t *testing.T) {
			fe := PersonInput{}.Validate()
			if fe == nil {
				t.Fatal("expected field errors for empty payload")
			}

			for _, field := range []string{"name", "title", "message", "photoUrl", "musicUrl", "musicTitle", "musicArtist"} {
				if _, ok := fe[field]; !ok {
					t.Errorf("expected an issue for field %q, got %v", field, fe)
				}
			}
		})

		t.Run("rejects whitespace-only fields", func(t *testing.T) {
			input := validInput()
			input.Name = "   "

			fe := input.Validate()
			if fe == nil || fe["name"] == "" {
				t.Errorf("expected an issue for whitespace name, got %v", fe)
			}
		})

		t.Run("rejects non-URL photo and music fields", func(t *testing.T) {
			input := validInput()
			input.PhotoURL = "not a url"
			input.MusicURL = "ftp://example.com/song.mp3"

			fe := input.Validate()
			if fe == nil {
				t.Fatal("expected field errors")
			}
			if fe["photoUrl"] == "" {
				t.Errorf("expected an issue for photoUrl, got %v", fe)
			}
			if fe["musicUrl"] == "" {
				t.Errorf("expected an issue for musicUrl, got %v", fe)
			}
			if _, ok := fe["name"]; ok {
				t.Errorf("name should not be flagged, got %v", fe)
			}
		})
	})

	t.Run("Person materializes with the given id", func(t *testing.T) {
		person := validInput().Person(7)

		if person.ID != 7 {
			t.Errorf("expected id 7, got %d", person.ID)
		}
		if person.Name != "Jane Doe" || person.MusicArtist != "Artist" {
			t.Errorf("fields not carried over: %+v", person)
		}
	})
}

func TestPersonPatch(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("Apply merges supplied fields only", func(t *testing.T) {
		existing := validInput().Person(1)
		merged := PersonPatch{Title: str("Principal Engineer")}.Apply(existing)

		if merged.Title != "Principal Engineer" {
			t.Errorf("expected title to change, got %q", merged.Title)
		}
		if merged.Name != existing.Name || merged.Message != existing.Message {
			t.Error("omitted fields must retain prior values")
		}
		if merged.ID != 1 {
			t.Errorf("id must be immutable, got %d", merged.ID)
		}
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		existing := validInput().Person(3)
		merged := PersonPatch{}.Apply(existing)

		if merged != existing {
			t.Errorf("expected identical record, got %+v", merged)
		}
	})

	t.Run("Validate checks only present fields", func(t *testing.T) {
		if fe := (PersonPatch{}).Validate(); fe != nil {
			t.Errorf("empty patch should validate, got %v", fe)
		}

		fe := PersonPatch{Name: str(""), PhotoURL: str("junk")}.Validate()
		if fe == nil {
			t.Fatal("expected field errors")
		}
		if fe["name"] == "" || fe["photoUrl"] == "" {
			t.Errorf("expected issues for name and photoUrl, got %v", fe)
		}
		if len(fe) != 2 {
			t.Errorf("absent fields must not be flagged, got %v", fe)
		}
	})

	t.Run("unmarshals a subset of fields", func(t *testing.T) {
		var patch PersonPatch
		if err := json.Unmarshal([]byte(`{"title":"Director"}`), &patch); err != nil {
			t.Fatalf("failed to unmarshal patch: %v", err)
		}

		if patch.Title == nil || *patch.Title != "Director" {
			t.Errorf("expected title pointer set, got %+v", patch)
		}
		if patch.Name != nil {
			t.Error("absent fields must stay nil")
		}
	})
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{"name": "is required", "photoUrl": "must be a URL"}
	msg := fe.Error()

	if !strings.Contains(msg, "name: is required") || !strings.Contains(msg, "photoUrl: must be a URL") {
		t.Errorf("unexpected error string: %q", msg)
	}
	if strings.Index(msg, "name") > strings.Index(msg, "photoUrl") {
		t.Errorf("fields should be listed in sorted order: %q", msg)
	}
}

func TestPersonJSONShape(t *testing.T) {
	person := validInput().Person(4)
	data, err := json.Marshal(person)
	if err != nil {
		t.Fatalf("failed to marshal person: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal person: %v", err)
	}

	for _, key := range []string{"id", "name", "title", "message", "photoUrl", "musicUrl", "musicTitle", "musicArtist"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("wire contract key %q missing from %s", key, data)
		}
	}
}
