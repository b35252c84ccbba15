// Package analyze provides package loading and static accessor checks.
//
// It uses golang.org/x/tools/go/packages with go/types to collect struct
// types, their fields and the method sets of their pointer types, then checks
// the same accessor naming rules the runtime verifier applies, without
// instantiating or invoking anything.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: fields and exported methods of one struct type
//   - Checker: reports accessor convention violations as diagnostics
package analyze
