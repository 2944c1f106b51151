// Package analyze provides package loading and struct model extraction for
// the lens generator.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the exported named structs in the target packages.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/pointer/slice/array/map/...)
//   - FieldInfo: describes field name, declaration index, type, and tags
package analyze
