package models

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// User represents an admin credential record.
//
// Users are seeded at startup and never updated or deleted. The password is
// stored in clear text; nothing authenticates against it yet.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Person represents a farewell page record.
//
// The JSON field names are part of the wire contract consumed by the web
// client and must not change.
type Person struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	PhotoURL    string `json:"photoUrl"`
	MusicURL    string `json:"musicUrl"`
	MusicTitle  string `json:"musicTitle"`
	MusicArtist string `json:"musicArtist"`
}

// PersonInput is the creation payload for a [Person]. Every field is required;
// the id is always assigned by the store and cannot be supplied.
type PersonInput struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	PhotoURL    string `json:"photoUrl"`
	MusicURL    string `json:"musicUrl"`
	MusicTitle  string `json:"musicTitle"`
	MusicArtist string `json:"musicArtist"`
}

// Person materializes the input as a [Person] with the given id.
func (in PersonInput) Person(id int) Person {
	return Person{
		ID:          id,
		Name:        in.Name,
		Title:       in.Title,
		Message:     in.Message,
		PhotoURL:    in.PhotoURL,
		MusicURL:    in.MusicURL,
		MusicTitle:  in.MusicTitle,
		MusicArtist: in.MusicArtist,
	}
}

// PersonPatch is a partial update payload for a [Person]. Nil fields are left
// untouched by [PersonPatch.Apply]; present fields must still pass the same
// rules as on creation.
type PersonPatch struct {
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Message     *string `json:"message,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	MusicURL    *string `json:"musicUrl,omitempty"`
	MusicTitle  *string `json:"musicTitle,omitempty"`
	MusicArtist *string `json:"musicArtist,omitempty"`
}

// Apply merges the patch over a copy of p and returns the merged record.
// Supplied fields overwrite, omitted fields keep their prior value, and the id
// never changes. The receiver's record is not mutated.
func (patch PersonPatch) Apply(p Person) Person {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Message != nil {
		p.Message = *patch.Message
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	if patch.MusicURL != nil {
		p.MusicURL = *patch.MusicURL
	}
	if patch.MusicTitle != nil {
		p.MusicTitle = *patch.MusicTitle
	}
	if patch.MusicArtist != nil {
		p.MusicArtist = *patch.MusicArtist
	}
	return p
}

// FieldErrors maps JSON field names to human-readable validation issues.
type FieldErrors map[string]string

// Error implements the error interface, listing fields in a stable order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field]))
	}
	return strings.Join(parts, "; ")
}

const (
	issueRequired   = "is required and must not be empty"
	issueInvalidURL = "must be a valid http(s) URL"
)

// Validate checks the creation payload and returns a [FieldErrors] describing
// every failing field, or nil when the payload is well formed.
func (in PersonInput) Validate() FieldErrors {
	fe := FieldErrors{}
	requireText(fe, "name", in.Name)
	requireText(fe, "title", in.Title)
	requireText(fe, "message", in.Message)
	requireURL(fe, "photoUrl", in.PhotoURL)
	requireURL(fe, "musicUrl", in.MusicURL)
	requireText(fe, "musicTitle", in.MusicTitle)
	requireText(fe, "musicArtist", in.MusicArtist)
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Validate checks only the fields present in the patch. An empty patch is
// valid and applies as a no-op.
func (patch PersonPatch) Validate() FieldErrors {
	fe := FieldErrors{}
	if patch.Name != nil {
		requireText(fe, "name", *patch.Name)
	}
	if patch.Title != nil {
		requireText(fe, "title", *patch.Title)
	}
	if patch.Message != nil {
		requireText(fe, "message", *patch.Message)
	}
	if patch.PhotoURL != nil {
		requireURL(fe, "photoUrl", *patch.PhotoURL)
	}
	if patch.MusicURL != nil {
		requireURL(fe, "musicUrl", *patch.MusicURL)
	}
	if patch.MusicTitle != nil {
		requireText(fe, "musicTitle", *patch.MusicTitle)
	}
	if patch.MusicArtist != nil {
		requireText(fe, "musicArtist", *patch.MusicArtist)
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func requireText(fe FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = issueRequired
	}
}

func requireURL(fe FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = issueRequired
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fe[field] = issueInvalidURL
	}
}
