// Package models defines domain entities and payload types for the farewell page service.
//
// The package contains three categories of types:
//
// 1. Stored records, identified by server-assigned integer ids:
//   - [User] : Admin credential records (seeded, currently never authenticated against)
//   - [Person] : Farewell page records with message, photo, and music metadata
//
// 2. Request payloads:
//   - [PersonInput] : Person creation payload, every field required
//   - [PersonPatch] : Partial update payload, any subset of fields
//
// 3. Validation results:
//   - [FieldErrors] : Field-keyed human-readable validation issues
//
// Both payload types implement Validate() against a single declared rule set
// (non-empty text fields, absolute http(s) URLs for photoUrl/musicUrl), so the
// HTTP layer and the CLI stay in sync on what a well-formed Person looks like.
package models
