package hydrator

import (
	"time"

	"github.com/vibast-solutions/abacatepay-go/app/codec"
)

type Kind int

const (
	KindPrimitive Kind = iota + 1
	KindEnum
	KindTimestamp
	KindResource
	KindFreeForm
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindTimestamp:
		return "timestamp"
	case KindResource:
		return "resource"
	case KindFreeForm:
		return "free-form"
	default:
		return "unknown"
	}
}

// Field binds a domain field name to a location inside T. decode receives non-nil raw
// values only; encode reports false when the field is unset and must not appear on the wire.
type Field[T any] struct {
	Name string
	Kind Kind

	decode func(dst *T, raw interface{}) error
	encode func(src *T) (interface{}, bool)
}

type Schema[T any] struct {
	name   string
	fields map[string]Field[T]
	order  []string
}

func NewSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		name:   name,
		fields: make(map[string]Field[T], len(fields)),
		order:  make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		if _, exists := s.fields[f.Name]; exists {
			panic("hydrator: duplicate field " + f.Name + " in schema " + name)
		}
		s.fields[f.Name] = f
		s.order = append(s.order, f.Name)
	}
	return s
}

func (s *Schema[T]) Name() string {
	return s.name
}

func (s *Schema[T]) Field(domainKey string) (Field[T], bool) {
	f, ok := s.fields[domainKey]
	return f, ok
}

func (s *Schema[T]) Fields() []Field[T] {
	result := make([]Field[T], 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.fields[name])
	}
	return result
}

func String[T any](name string, ref func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindPrimitive,
		decode: func(dst *T, raw interface{}) error {
			v, err := codec.String(raw)
			if err != nil {
				return err
			}
			*ref(dst) = v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			return v, v != ""
		},
	}
}

func OptionalString[T any](name string, ref func(*T) **string) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindPrimitive,
		decode: func(dst *T, raw interface{}) error {
			v, err := codec.String(raw)
			if err != nil {
				return err
			}
			*ref(dst) = &v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			if v == nil {
				return nil, false
			}
			return *v, true
		},
	}
}

func Int[T any](name string, ref func(*T) *int64) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindPrimitive,
		decode: func(dst *T, raw interface{}) error {
			v, err := codec.Int(raw)
			if err != nil {
				return err
			}
			*ref(dst) = v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			return v, v != 0
		},
	}
}

func OptionalInt[T any](name string, ref func(*T) **int64) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindPrimitive,
		decode: func(dst *T, raw interface{}) error {
			v, err := codec.Int(raw)
			if err != nil {
				return err
			}
			*ref(dst) = &v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			if v == nil {
				return nil, false
			}
			return *v, true
		},
	}
}

func Bool[T any](name string, ref func(*T) *bool) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindPrimitive,
		decode: func(dst *T, raw interface{}) error {
			v, err := codec.Bool(raw)
			if err != nil {
				return err
			}
			*ref(dst) = v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			return *ref(src), true
		},
	}
}

// StringList holds a list of plain identifiers, such as payment methods.
func StringList[T any, E ~string](name string, ref func(*T) *[]E) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindPrimitive,
		decode: func(dst *T, raw interface{}) error {
			items, err := codec.Strings(raw)
			if err != nil {
				return err
			}
			values := make([]E, 0, len(items))
			for _, item := range items {
				values = append(values, E(item))
			}
			*ref(dst) = values
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			values := *ref(src)
			if values == nil {
				return nil, false
			}
			items := make([]interface{}, 0, len(values))
			for _, v := range values {
				items = append(items, string(v))
			}
			return items, true
		},
	}
}

func Enum[T any, E ~string](name string, resolve func(string) (E, error), ref func(*T) *E) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindEnum,
		decode: func(dst *T, raw interface{}) error {
			s, err := codec.String(raw)
			if err != nil {
				return err
			}
			v, err := resolve(s)
			if err != nil {
				return err
			}
			*ref(dst) = v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			return string(v), v != ""
		},
	}
}

func Timestamp[T any](name string, ref func(*T) *time.Time) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindTimestamp,
		decode: func(dst *T, raw interface{}) error {
			s, err := codec.String(raw)
			if err != nil {
				return err
			}
			v, err := ParseTimestamp(s)
			if err != nil {
				return err
			}
			*ref(dst) = v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			if v.IsZero() {
				return nil, false
			}
			return FormatTimestamp(v), true
		},
	}
}

func Resource[T, N any](name string, nested *Schema[N], ref func(*T) **N) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindResource,
		decode: func(dst *T, raw interface{}) error {
			m, err := codec.Map(raw)
			if err != nil {
				return err
			}
			v, err := Hydrate(nested, m)
			if err != nil {
				return err
			}
			*ref(dst) = v
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			if v == nil {
				return nil, false
			}
			return Dehydrate(nested, v), true
		},
	}
}

// ResourceList hydrates an ordered sequence of nested resources. Null elements are skipped.
func ResourceList[T, N any](name string, nested *Schema[N], ref func(*T) *[]N) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindResource,
		decode: func(dst *T, raw interface{}) error {
			items, err := HydrateList(nested, raw)
			if err != nil {
				return err
			}
			values := make([]N, 0, len(items))
			for _, item := range items {
				values = append(values, *item)
			}
			*ref(dst) = values
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			values := *ref(src)
			if values == nil {
				return nil, false
			}
			items := make([]interface{}, 0, len(values))
			for i := range values {
				items = append(items, Dehydrate(nested, &values[i]))
			}
			return items, true
		},
	}
}

// FreeForm keeps an opaque mapping as decoded, keys included.
func FreeForm[T any](name string, ref func(*T) *map[string]interface{}) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindFreeForm,
		decode: func(dst *T, raw interface{}) error {
			m, err := codec.Map(raw)
			if err != nil {
				return err
			}
			*ref(dst) = m
			return nil
		},
		encode: func(src *T) (interface{}, bool) {
			v := *ref(src)
			if v == nil {
				return nil, false
			}
			return v, true
		},
	}
}
