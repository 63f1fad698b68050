// File: attribute.go
// Title: Struct Tag Attributes
// Description: Looks up struct field tags by field name and parses them into
//              attributes with a name and options.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package reflectx

import (
	"errors"
	"reflect"

	"github.com/vmihailenco/tagparser"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
)

var (
	// ErrNilArgument is the cause of errors for a nil type or object.
	ErrNilArgument = errors.New("argument cannot be nil")

	// ErrBlankArgument is the cause of errors for a blank field name or tag key.
	ErrBlankArgument = errors.New("argument cannot be blank")

	// ErrNotStruct is the cause of errors for types that have no fields.
	ErrNotStruct = errors.New("type is not a struct")
)

// Attribute is a parsed struct tag value.
//
// For `display:"User first name,order:1,readonly"` the attribute has
// Key "display", Name "User first name" and the options order=1 and
// readonly="". Single-quoted values are unquoted.
type Attribute struct {
	Field   string
	Key     string
	Name    string
	Options map[string]string
}

// Option returns the value of an option and whether it is present.
func (a *Attribute) Option(name string) (string, bool) {
	value, ok := a.Options[name]
	return value, ok
}

// HasOption reports whether the option is present, with or without value.
func (a *Attribute) HasOption(name string) bool {
	_, ok := a.Options[name]
	return ok
}

// FieldAttribute returns the attribute stored under key on the named field
// of typ. Pointer types are dereferenced and promoted fields of embedded
// structs are found. It returns nil without error when the field does not
// exist or has no such tag.
func FieldAttribute(typ reflect.Type, field, key string) (*Attribute, error) {
	const op = "FieldAttribute"

	typ, err := structType(op, typ)
	if err != nil {
		return nil, err
	}
	if mdwstringx.IsBlank(field) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, op, "field", ErrBlankArgument)
	}
	if mdwstringx.IsBlank(key) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, op, "key", ErrBlankArgument)
	}

	sf, ok := typ.FieldByName(field)
	if !ok {
		return nil, nil
	}
	return parseAttribute(sf, key), nil
}

// AttributeOf is the generic form of FieldAttribute.
func AttributeOf[T any](field, key string) (*Attribute, error) {
	return FieldAttribute(reflect.TypeOf((*T)(nil)).Elem(), field, key)
}

// ObjectAttribute looks up the attribute on the dynamic type of obj.
func ObjectAttribute(obj any, field, key string) (*Attribute, error) {
	if obj == nil {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, "ObjectAttribute", "obj", ErrNilArgument)
	}
	return FieldAttribute(reflect.TypeOf(obj), field, key)
}

// FieldAttributes returns the attributes stored under key for all direct
// fields of typ that carry the tag, in declaration order. Fields tagged
// with the name "-" are skipped.
func FieldAttributes(typ reflect.Type, key string) ([]*Attribute, error) {
	const op = "FieldAttributes"

	typ, err := structType(op, typ)
	if err != nil {
		return nil, err
	}
	if mdwstringx.IsBlank(key) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, op, "key", ErrBlankArgument)
	}

	var attrs []*Attribute
	for i := 0; i < typ.NumField(); i++ {
		attr := parseAttribute(typ.Field(i), key)
		if attr == nil || attr.Name == "-" {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func structType(op string, typ reflect.Type) (reflect.Type, error) {
	if typ == nil {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, op, "typ", ErrNilArgument)
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleReflectx).
			Operation(op).
			Messagef("reflectx.%s: %s is not a struct", op, typ).
			Code(mdwerror.CodeInvalidArgument).
			Cause(ErrNotStruct).
			Detail("argument", "typ").
			Detail("kind", typ.Kind().String()).
			Build()
	}
	return typ, nil
}

func parseAttribute(sf reflect.StructField, key string) *Attribute {
	value, ok := sf.Tag.Lookup(key)
	if !ok {
		return nil
	}

	tag := tagparser.Parse(value)
	name, _ := tagparser.Unquote(tag.Name)

	options := make(map[string]string, len(tag.Options))
	for k, v := range tag.Options {
		options[k], _ = tagparser.Unquote(v)
	}

	return &Attribute{
		Field:   sf.Name,
		Key:     key,
		Name:    name,
		Options: options,
	}
}
