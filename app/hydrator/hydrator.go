package hydrator

import (
	"fmt"
	"sort"

	"github.com/vibast-solutions/abacatepay-go/app/codec"
)

// Hydrate builds a T from a decoded JSON object. Keys may use either naming convention.
// Keys without a matching field are dropped and null values leave the field unset.
// Fields are decoded in schema order, so the first reported error is stable.
func Hydrate[T any](s *Schema[T], raw map[string]interface{}) (*T, error) {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[string]interface{}, len(keys))
	for _, key := range keys {
		name := codec.ToDomainKey(key)
		if _, ok := s.fields[name]; !ok || raw[key] == nil {
			continue
		}
		// camelCase wins over a snake_case duplicate of the same field.
		if _, seen := values[name]; seen && key == name {
			continue
		}
		values[name] = raw[key]
	}

	result := new(T)
	for _, name := range s.order {
		value, ok := values[name]
		if !ok {
			continue
		}
		if err := s.fields[name].decode(result, value); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.name, name, err)
		}
	}
	return result, nil
}

// HydrateList hydrates every object of a decoded JSON array. A null array yields no items.
func HydrateList[T any](s *Schema[T], raw interface{}) ([]*T, error) {
	if raw == nil {
		return []*T{}, nil
	}
	items, err := codec.List(raw)
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", s.name, err)
	}

	result := make([]*T, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		m, err := codec.Map(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", s.name, i, err)
		}
		v, err := Hydrate(s, m)
		if err != nil {
			return nil, fmt.Errorf("[%d] %w", i, err)
		}
		result = append(result, v)
	}
	return result, nil
}

// Dehydrate renders v in wire form with camelCase keys. Unset fields are omitted.
func Dehydrate[T any](s *Schema[T], v *T) map[string]interface{} {
	result := make(map[string]interface{}, len(s.order))
	if v == nil {
		return result
	}
	for _, name := range s.order {
		if value, ok := s.fields[name].encode(v); ok {
			result[codec.ToWireKey(name)] = value
		}
	}
	return result
}
