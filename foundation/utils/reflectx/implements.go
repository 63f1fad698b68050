// File: implements.go
// Title: Interface Implementation Checks
// Description: Runtime checks whether a type implements an interface type.
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

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
)

// ErrNotInterface is the cause of errors when the target is not an interface.
var ErrNotInterface = errors.New("type is not an interface")

// Implements reports whether typ implements iface. For a non-pointer,
// non-interface typ the method set of *typ is consulted as well, so a
// struct whose methods have pointer receivers counts as implementing.
func Implements(typ, iface reflect.Type) (bool, error) {
	if err := checkImplementsArgs("Implements", typ, iface); err != nil {
		return false, err
	}

	if typ.Implements(iface) {
		return true, nil
	}
	if typ.Kind() != reflect.Pointer && typ.Kind() != reflect.Interface {
		return reflect.PointerTo(typ).Implements(iface), nil
	}
	return false, nil
}

// ImplementsStrict reports whether the method set of typ itself implements iface.
func ImplementsStrict(typ, iface reflect.Type) (bool, error) {
	if err := checkImplementsArgs("ImplementsStrict", typ, iface); err != nil {
		return false, err
	}
	return typ.Implements(iface), nil
}

// ImplementsInterface is the generic form of Implements. Generic interfaces
// are checked through their instantiation:
//
//	ok, err := reflectx.ImplementsInterface[Store[User]](reflect.TypeOf(db))
func ImplementsInterface[I any](typ reflect.Type) (bool, error) {
	return Implements(typ, reflect.TypeOf((*I)(nil)).Elem())
}

func checkImplementsArgs(op string, typ, iface reflect.Type) error {
	if typ == nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, op, "typ", ErrNilArgument)
	}
	if iface == nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleReflectx, op, "iface", ErrNilArgument)
	}
	if iface.Kind() != reflect.Interface {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleReflectx).
			Operation(op).
			Messagef("reflectx.%s: %s is not an interface", op, iface).
			Code(mdwerror.CodeInvalidArgument).
			Cause(ErrNotInterface).
			Detail("argument", "iface").
			Build()
	}
	return nil
}
