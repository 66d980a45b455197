// File: resolve.go
// Title: Layered Option Resolution
// Description: Reflection based merge of option layers onto a defaults
//              struct with cached field mappings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package options

import (
	"fmt"
	"reflect"
	"sync"
)

// Of returns a pointer to v, for filling pointer option fields
func Of[T any](v T) *T {
	return &v
}

// Value returns *p, or fallback when p is nil
func Value[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Resolve copies defaults and applies each layer in order; later layers win.
// A layer may be nil, a struct or a pointer to a struct. Layer fields without
// a same-named, assignable target field are ignored. Resolve panics when T
// is not a struct type.
func Resolve[T any](defaults T, layers ...any) T {
	target := reflect.ValueOf(&defaults).Elem()
	if target.Kind() != reflect.Struct {
		panic(fmt.Sprintf("options.Resolve: %s is not a struct type", target.Type()))
	}

	for _, layer := range layers {
		apply(target, layer)
	}
	return defaults
}

func apply(target reflect.Value, layer any) {
	if layer == nil {
		return
	}
	src := reflect.ValueOf(layer)
	for src.Kind() == reflect.Pointer {
		if src.IsNil() {
			return
		}
		src = src.Elem()
	}
	if src.Kind() != reflect.Struct {
		return
	}

	for _, m := range mappingFor(src.Type(), target.Type()) {
		field := src.Field(m.src)
		if m.deref {
			if field.IsNil() {
				continue
			}
			target.Field(m.dst).Set(field.Elem())
			continue
		}
		if !provided(field) {
			continue
		}
		target.Field(m.dst).Set(field)
	}
}

func provided(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Interface, reflect.Pointer, reflect.Chan:
		return !v.IsNil()
	default:
		return !v.IsZero()
	}
}

type fieldMapping struct {
	src, dst int
	deref    bool
}

type mappingKey struct {
	src, dst reflect.Type
}

var mappings sync.Map // mappingKey -> []fieldMapping

func mappingFor(src, dst reflect.Type) []fieldMapping {
	key := mappingKey{src, dst}
	if cached, ok := mappings.Load(key); ok {
		return cached.([]fieldMapping)
	}

	var result []fieldMapping
	for i := 0; i < src.NumField(); i++ {
		sf := src.Field(i)
		if !sf.IsExported() {
			continue
		}
		df, ok := dst.FieldByName(sf.Name)
		if !ok || len(df.Index) != 1 || !df.IsExported() {
			continue
		}

		switch {
		case sf.Type.AssignableTo(df.Type):
			result = append(result, fieldMapping{src: i, dst: df.Index[0]})
		case sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().AssignableTo(df.Type):
			result = append(result, fieldMapping{src: i, dst: df.Index[0], deref: true})
		}
	}

	mappings.Store(key, result)
	return result
}
