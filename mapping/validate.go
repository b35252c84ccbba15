package mapping

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTypeName = errors.New("type entry without a type name")
	ErrDuplicateType = errors.New("duplicate type entry")
	ErrEmptyNames    = errors.New("field entry without accessor names")
)

// Validate checks the structural consistency of a File: every entry names a
// type, no type appears twice and every field entry names at least one
// accessor.
func Validate(f *File) error {
	var errs []error

	seen := map[string]struct{}{}

	for i := range f.Types {
		entry := &f.Types[i]
		if entry.Type == "" {
			errs = append(errs, fmt.Errorf("types[%d]: %w", i, ErrEmptyTypeName))
			continue
		}

		if _, ok := seen[entry.Type]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Type, ErrDuplicateType))
			continue
		}

		seen[entry.Type] = struct{}{}

		for field, names := range entry.Fields {
			if names.IsEmpty() {
				errs = append(errs, fmt.Errorf("%s.%s: %w", entry.Type, field, ErrEmptyNames))
			}
		}
	}

	return errors.Join(errs...)
}
