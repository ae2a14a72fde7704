package dto

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeBody reads a json request body and keeps only the policy's writable
// fields. Unknown and non-writable fields are dropped; a field explicitly set
// to null is treated the same as an absent field.
func (policy Policy) DecodeBody(body io.Reader) (map[string]any, error) {
	raw := make(map[string]any)
	err := json.NewDecoder(body).Decode(&raw)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	for _, name := range policy.Writable {
		value, ok := raw[name]
		if !ok || value == nil {
			continue
		}
		fields[name] = value
	}

	return fields, nil
}

// CheckRequired verifies that every mandatory field is present, for create
// operations.
func (policy Policy) CheckRequired(fields map[string]any) error {
	for _, name := range policy.Required {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	return nil
}

// Render shapes one entity for a response, dropping the fields the policy
// omits for the operation.
func (policy Policy) Render(entity any, detail bool) (map[string]any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	shaped := make(map[string]any)
	err = json.Unmarshal(raw, &shaped)
	if err != nil {
		return nil, err
	}

	omit := policy.ReadOmit
	if detail {
		omit = policy.DetailOmit
	}
	for _, name := range omit {
		delete(shaped, name)
	}

	return shaped, nil
}

// RenderList shapes a sequence of entities with the policy's read omissions.
func RenderList[T any](policy Policy, entities []T) ([]map[string]any, error) {
	shaped := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		element, err := policy.Render(entity, false)
		if err != nil {
			return nil, err
		}
		shaped = append(shaped, element)
	}
	return shaped, nil
}

// Decode turns a filtered field map into an entity value.
func Decode[T any](fields map[string]any) (T, error) {
	var entity T
	raw, err := json.Marshal(fields)
	if err != nil {
		return entity, err
	}
	err = json.Unmarshal(raw, &entity)
	return entity, err
}
