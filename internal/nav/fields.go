package nav

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gravitrone/arkmgr/internal/store"
)

// Kind is the semantic type a buffer is coerced to on commit.
type Kind int

const (
	Text Kind = iota
	Uint
)

func (k Kind) String() string {
	if k == Uint {
		return "number"
	}
	return "text"
}

// Field describes one editable attribute of a record kind.
type Field[R any] struct {
	Name string
	Kind Kind
	Get  func(*R) string
	Set  func(*R, string) error
}

// FieldTypeError is returned when a buffer does not coerce to its field type.
type FieldTypeError struct {
	Field string
	Kind  Kind
	Value string
	Err   error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s must be a %s, got %q", e.Field, e.Kind, e.Value)
}

func (e *FieldTypeError) Unwrap() error { return e.Err }

// IsFieldTypeError reports whether err carries a *FieldTypeError.
func IsFieldTypeError(err error) bool {
	var fte *FieldTypeError
	return errors.As(err, &fte)
}

func textField[R any](name string, ptr func(*R) *string) Field[R] {
	return Field[R]{
		Name: name,
		Kind: Text,
		Get:  func(r *R) string { return *ptr(r) },
		Set: func(r *R, v string) error {
			*ptr(r) = v
			return nil
		},
	}
}

func uintField[R any](name string, ptr func(*R) *uint) Field[R] {
	return Field[R]{
		Name: name,
		Kind: Uint,
		Get:  func(r *R) string { return strconv.FormatUint(uint64(*ptr(r)), 10) },
		Set: func(r *R, v string) error {
			n, err := strconv.ParseUint(v, 10, strconv.IntSize)
			if err != nil {
				return &FieldTypeError{Field: name, Kind: Uint, Value: v, Err: err}
			}
			*ptr(r) = uint(n)
			return nil
		},
	}
}

// ServerFields is the edit table for servers, in field cursor order.
var ServerFields = []Field[store.Server]{
	uintField("id", func(s *store.Server) *uint { return &s.ID }),
	textField("name", func(s *store.Server) *string { return &s.Name }),
	textField("category", func(s *store.Server) *string { return &s.Category }),
	uintField("age", func(s *store.Server) *uint { return &s.Age }),
	textField("service_name", func(s *store.Server) *string { return &s.ServiceName }),
}

// ModFields is the edit table for mods, in field cursor order.
var ModFields = []Field[store.Mod]{
	uintField("id", func(m *store.Mod) *uint { return &m.ID }),
	textField("name", func(m *store.Mod) *string { return &m.Name }),
	textField("category", func(m *store.Mod) *string { return &m.Category }),
	uintField("age", func(m *store.Mod) *uint { return &m.Age }),
}

// Commit coerces buf into field idx of rec. rec is untouched on error.
func Commit[R any](fields []Field[R], idx int, rec *R, buf string) error {
	if idx < 0 || idx >= len(fields) {
		return fmt.Errorf("field %d of %d: %w", idx, len(fields), ErrSelectionInvalid)
	}
	tmp := *rec
	if err := fields[idx].Set(&tmp, buf); err != nil {
		return err
	}
	*rec = tmp
	return nil
}
