// Package accessor verifies that data-model types expose consistent accessor
// methods for their fields.
//
// For every declared struct field a Verifier expects:
//   - scalar fields: GetX (IsX for bool fields) and SetX round-tripping an
//     example value
//   - slice fields: GetX plus an adder and a remover, found by name rules
//     (AddX, AddX minus one trailing rune, AddX with "List" removed, and
//     AddProperty for "properties")
//
// Types that do not follow the convention can implement describe.Describer
// and hand out their accessors as closures, or have their names supplied
// through WithNames or a mapping file.
//
// Typical use from a test:
//
//	func TestPost(t *testing.T) {
//		accessor.New().TestInstance(t, &Post{})
//	}
package accessor
