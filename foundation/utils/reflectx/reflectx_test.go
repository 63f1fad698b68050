// File: reflectx_test.go
// Title: Reflection Helper Tests
// Description: Tests for struct tag attribute lookup and interface checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package reflectx

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
)

type audit struct {
	CreatedBy string `display:"Created by"`
}

type user struct {
	audit
	FirstName string `display:"User first name"`
	LastName  string
	Email     string `display:"'E-mail, primary',order:3,readonly" json:"email"`
	Internal  string `display:"-"`
	Note      string `display:""`
}

type counter struct{ n int }

func (c *counter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

type label string

func (l label) String() string { return string(l) }

type repository[T any] interface {
	Get(id int) (T, error)
}

type userRepository struct{}

func (userRepository) Get(int) (user, error) { return user{}, nil }

func assertInvalidArgument(t *testing.T, err error, cause error) {
	t.Helper()
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Fatalf("error = %v, want INVALID_ARGUMENT", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not match %v", err, cause)
	}
}

func TestFieldAttribute(t *testing.T) {
	typ := reflect.TypeOf(user{})

	tests := []struct {
		name     string
		typ      reflect.Type
		field    string
		wantName string
		wantNil  bool
	}{
		{"tagged field", typ, "FirstName", "User first name", false},
		{"untagged field", typ, "LastName", "", true},
		{"missing field", typ, "Age", "", true},
		{"pointer type", reflect.TypeOf(&user{}), "FirstName", "User first name", false},
		{"promoted field", typ, "CreatedBy", "Created by", false},
		{"quoted name", typ, "Email", "E-mail, primary", false},
		{"empty tag", typ, "Note", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, err := FieldAttribute(tt.typ, tt.field, "display")
			if err != nil {
				t.Fatalf("FieldAttribute() error = %v", err)
			}
			if tt.wantNil {
				if attr != nil {
					t.Errorf("FieldAttribute() = %+v, want nil", attr)
				}
				return
			}
			if attr == nil {
				t.Fatal("FieldAttribute() = nil")
			}
			if attr.Name != tt.wantName || attr.Key != "display" || attr.Field != tt.field {
				t.Errorf("FieldAttribute() = %+v", attr)
			}
		})
	}
}

func TestAttributeOptions(t *testing.T) {
	attr, err := AttributeOf[user]("Email", "display")
	if err != nil || attr == nil {
		t.Fatalf("AttributeOf() = %v, %v", attr, err)
	}
	if order, ok := attr.Option("order"); !ok || order != "3" {
		t.Errorf("Option(order) = %q, %v", order, ok)
	}
	if !attr.HasOption("readonly") || attr.HasOption("hidden") {
		t.Errorf("options = %v", attr.Options)
	}

	other, _ := FieldAttribute(reflect.TypeOf(user{}), "Email", "json")
	if other == nil || other.Name != "email" {
		t.Errorf("json attribute = %+v", other)
	}
}

func TestFieldAttributeErrors(t *testing.T) {
	typ := reflect.TypeOf(user{})

	_, err := FieldAttribute(nil, "FirstName", "display")
	assertInvalidArgument(t, err, ErrNilArgument)

	_, err = FieldAttribute(typ, " ", "display")
	assertInvalidArgument(t, err, ErrBlankArgument)

	_, err = FieldAttribute(typ, "FirstName", "")
	assertInvalidArgument(t, err, ErrBlankArgument)

	_, err = FieldAttribute(reflect.TypeOf(42), "FirstName", "display")
	assertInvalidArgument(t, err, ErrNotStruct)
}

func TestObjectAttribute(t *testing.T) {
	attr, err := ObjectAttribute(&user{FirstName: "Ada"}, "FirstName", "display")
	if err != nil || attr == nil || attr.Name != "User first name" {
		t.Errorf("ObjectAttribute() = %+v, %v", attr, err)
	}

	attr, err = ObjectAttribute(user{}, "LastName", "display")
	if err != nil || attr != nil {
		t.Errorf("ObjectAttribute(untagged) = %+v, %v", attr, err)
	}

	var typedNil *user
	if attr, err = ObjectAttribute(typedNil, "FirstName", "display"); err != nil || attr == nil {
		t.Errorf("ObjectAttribute(typed nil) = %+v, %v", attr, err)
	}

	_, err = ObjectAttribute(nil, "FirstName", "display")
	assertInvalidArgument(t, err, ErrNilArgument)
}

func TestFieldAttributes(t *testing.T) {
	attrs, err := FieldAttributes(reflect.TypeOf(user{}), "display")
	if err != nil {
		t.Fatalf("FieldAttributes() error = %v", err)
	}

	var fields []string
	for _, attr := range attrs {
		fields = append(fields, attr.Field)
	}
	if got := fmt.Sprint(fields); got != "[FirstName Email Note]" {
		t.Errorf("FieldAttributes() fields = %s", got)
	}
}

func TestImplements(t *testing.T) {
	writer := reflect.TypeOf((*io.Writer)(nil)).Elem()
	stringer := reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

	tests := []struct {
		name       string
		typ        reflect.Type
		iface      reflect.Type
		want       bool
		wantStrict bool
	}{
		{"pointer receiver on pointer", reflect.TypeOf(&counter{}), writer, true, true},
		{"pointer receiver on value", reflect.TypeOf(counter{}), writer, true, false},
		{"value receiver", reflect.TypeOf(label("")), stringer, true, true},
		{"not implemented", reflect.TypeOf(label("")), writer, false, false},
		{"interface embeds interface", reflect.TypeOf((*io.ReadWriter)(nil)).Elem(), writer, true, true},
		{"interface does not embed", reflect.TypeOf((*io.Reader)(nil)).Elem(), writer, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Implements(tt.typ, tt.iface)
			if err != nil || got != tt.want {
				t.Errorf("Implements() = %v, %v; want %v", got, err, tt.want)
			}
			strict, err := ImplementsStrict(tt.typ, tt.iface)
			if err != nil || strict != tt.wantStrict {
				t.Errorf("ImplementsStrict() = %v, %v; want %v", strict, err, tt.wantStrict)
			}
		})
	}
}

func TestImplementsInterface(t *testing.T) {
	ok, err := ImplementsInterface[repository[user]](reflect.TypeOf(userRepository{}))
	if err != nil || !ok {
		t.Errorf("ImplementsInterface[repository[user]]() = %v, %v", ok, err)
	}

	ok, err = ImplementsInterface[repository[string]](reflect.TypeOf(userRepository{}))
	if err != nil || ok {
		t.Errorf("ImplementsInterface[repository[string]]() = %v, %v", ok, err)
	}

	_, err = ImplementsInterface[user](reflect.TypeOf(userRepository{}))
	assertInvalidArgument(t, err, ErrNotInterface)
}

func TestImplementsErrors(t *testing.T) {
	writer := reflect.TypeOf((*io.Writer)(nil)).Elem()

	_, err := Implements(nil, writer)
	assertInvalidArgument(t, err, ErrNilArgument)

	_, err = Implements(reflect.TypeOf(counter{}), nil)
	assertInvalidArgument(t, err, ErrNilArgument)

	_, err = ImplementsStrict(reflect.TypeOf(counter{}), reflect.TypeOf(counter{}))
	assertInvalidArgument(t, err, ErrNotInterface)
}
