// Package fields holds the typed values a command's raw arguments are turned into.
// Each kind of field validates and canonicalizes a raw string or returns a *ValidationError
// carrying that field's constraints message. Values are immutable once made.
package fields

import (
	"fmt"
	"sort"
)

// Value is a validated field value.
type Value interface {
	// String is the short form, used in compact listings.
	String() string
	// Describe is the long form, used in sentences.
	Describe() string
}

// Kind knows how to validate and parse one kind of field.
type Kind interface {
	// Name is the name used to refer to the Kind in configuration.
	Name() string
	// Valid reports if Parse() would succeed on "raw".
	Valid(raw string) bool
	// Parse converts "raw" to a Value or returns a *ValidationError.
	Parse(raw string) (Value, error)
}

// ValidationError is returned when a raw value breaks its field's rules.
type ValidationError struct {
	// Field is the Kind name.
	Field string
	// Constraints is the user facing message describing valid values.
	Constraints string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Constraints
}

func invalid(field, constraints string) *ValidationError {
	return &ValidationError{Field: field, Constraints: constraints}
}

// kind adapts a constructor into a Kind.
type kind[T Value] struct {
	name  string
	parse func(string) (T, error)
}

func (k kind[T]) Name() string {
	return k.name
}

func (k kind[T]) Parse(raw string) (Value, error) {
	v, err := k.parse(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (k kind[T]) Valid(raw string) bool {
	_, err := k.parse(raw)
	return err == nil
}

var registry = map[string]Kind{}

func register(k Kind) {
	if _, ok := registry[k.Name()]; ok {
		panic(fmt.Sprintf("fields: Kind(%s) registered twice", k.Name()))
	}
	registry[k.Name()] = k
}

func init() {
	register(kind[Name]{KindName, NewName})
	register(kind[Phone]{KindPhone, NewPhone})
	register(kind[Address]{KindAddress, NewAddress})
	register(kind[Email]{KindEmail, NewEmail})
	register(kind[Income]{KindIncome, NewIncome})
	register(kind[Family]{KindFamily, NewFamily})
	register(kind[Remark]{KindRemark, NewRemark})
	register(kind[Birthday]{KindBirthday, NewBirthday})
	register(kind[HousingType]{KindHousing, NewHousingType})
	register(kind[Tag]{KindTag, NewTag})
}

// Lookup returns the Kind called "name".
func Lookup(name string) (Kind, error) {
	k, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("field kind(%s) does not exist", name)
	}
	return k, nil
}

// Names returns the names of all Kind(s), sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
