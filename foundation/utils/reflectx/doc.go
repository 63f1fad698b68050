// File: doc.go
// Title: Reflection Helpers Package Documentation
// Description: Package reflectx reads struct tag attributes and checks
//              interface implementation at runtime.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package reflectx reads struct tag attributes and checks interface
// implementation at runtime.
//
// Struct tags are parsed with github.com/vmihailenco/tagparser:
//
//	type User struct {
//		FirstName string `display:"User first name"`
//	}
//
//	attr, err := reflectx.AttributeOf[User]("FirstName", "display")
//	// attr.Name == "User first name"
//
// A missing field or tag is not an error; the lookup returns nil.
// Nil types, blank names and non-struct types are INVALID_ARGUMENT errors.
//
// Prefer compile-time assertions (var _ io.Writer = (*T)(nil)) where the
// types are known; Implements is for types that only exist at runtime.
package reflectx
