package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	MinPageLimit = 1
	MaxPageLimit = 100
)

// DecodeStrict unmarshals an input payload rejecting unknown fields, so a
// malformed shape fails before authorization or data access.
func DecodeStrict(raw []byte, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return errors.New("missing request body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid request body")
	}

	return nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateLimit bounds an optional page limit to [MinPageLimit, MaxPageLimit],
// falling back to def when absent.
func ValidateLimit(limit *int, def int) (int, error) {
	if limit == nil {
		return def, nil
	}
	if *limit < MinPageLimit || *limit > MaxPageLimit {
		return 0, fmt.Errorf("limit must be between %d and %d", MinPageLimit, MaxPageLimit)
	}
	return *limit, nil
}
