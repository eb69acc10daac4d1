package kernel

import (
	"fmt"

	"aidtracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies personas, deliveries, teams, users and audit entries.
// The zero value is invalid.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (v4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced or urn form.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds an identifier from its 16 raw bytes, as stored by the repositories.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// OptionalUUID converts a nullable storage column into a domain identifier.
func OptionalUUID(raw *uuid.UUID) (*UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying google/uuid value for DTO mapping.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// BytesPtr is the nullable counterpart of Bytes.
func BytesPtr(u *UUID) *uuid.UUID {
	if u == nil {
		return nil
	}
	raw := u.id
	return &raw
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText lets identifiers travel inside audit snapshots as strings.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}
