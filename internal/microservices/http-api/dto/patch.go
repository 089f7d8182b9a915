package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// UnknownFieldPolicy decides what a partial update does with keys that are
// not on the entity's allow-list.
type UnknownFieldPolicy string

const (
	RejectUnknownFields UnknownFieldPolicy = "reject"
	IgnoreUnknownFields UnknownFieldPolicy = "ignore"
)

// Patch is implemented by every update DTO; Fields lists the JSON keys a
// caller may set.
type Patch interface {
	Fields() []string
}

// NullablePatch is a Patch with fields that an explicit JSON null clears.
// ClearField reports whether field accepts null.
type NullablePatch interface {
	Patch
	ClearField(field string) bool
}

type UnknownFieldsError struct {
	Fields []string
}

func (e *UnknownFieldsError) Error() string {
	return "unknown fields: " + strings.Join(e.Fields, ", ")
}

type NullFieldsError struct {
	Fields []string
}

func (e *NullFieldsError) Error() string {
	return "fields must not be null: " + strings.Join(e.Fields, ", ")
}

// DecodePatch decodes a JSON object into dst after checking its keys against
// dst.Fields(). Unknown keys are rejected or dropped according to policy. A
// known key set to null clears the field when dst allows it and is rejected
// otherwise.
func DecodePatch(body []byte, dst Patch, policy UnknownFieldPolicy) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	allowed := dst.Fields()
	var unknown []string
	for key := range raw {
		if !slices.Contains(allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		if policy != IgnoreUnknownFields {
			sort.Strings(unknown)
			return &UnknownFieldsError{Fields: unknown}
		}
		for _, key := range unknown {
			delete(raw, key)
		}
	}

	var nulls []string
	for key, value := range raw {
		if string(bytes.TrimSpace(value)) == "null" {
			nulls = append(nulls, key)
			delete(raw, key)
		}
	}
	nullable, _ := dst.(NullablePatch)
	var rejected []string
	for _, key := range nulls {
		if nullable == nil || !nullable.ClearField(key) {
			rejected = append(rejected, key)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return &NullFieldsError{Fields: rejected}
	}

	clean, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(clean, dst); err != nil {
		return fmt.Errorf("invalid field value: %w", err)
	}
	return nil
}

// RefDTO is the embedded form of a reference: {"id": "..."}.
type RefDTO struct {
	ID string `json:"id"`
}

// refOf collapses the two accepted reference forms into one id. The flat
// form wins when both are present.
func refOf(id string, embedded *RefDTO) string {
	if s := strings.TrimSpace(id); s != "" {
		return s
	}
	if embedded != nil {
		return strings.TrimSpace(embedded.ID)
	}
	return ""
}
