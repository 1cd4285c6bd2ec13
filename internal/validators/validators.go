// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the stateless predicates that services run
// before touching storage.
//
// The predicates work on the structural shape of a value rather than on a
// concrete type: struct fields are addressed by their JSON names, so the
// same property names a client sends are the ones that are checked.
//
// Truthiness follows a small fixed table: false, zero numbers, NaN, empty
// strings and nil references are "empty"; everything else is "present".
// Empty but non-nil slices and maps are present.
//
// Single-row lookups report absence with an explicit found flag, so
// [HasData] is only used on list results to turn an empty list into a
// not-found error.
package validators

import (
	"math"
	"reflect"
	"strings"
)

// IsValidID reports whether id is a number, an integer and strictly greater
// than zero. NaN, infinities, fractional values, zero, negatives and
// non-numeric values are all rejected.
func IsValidID(id any) bool {
	v := reflect.ValueOf(id)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return isPositiveInteger(v.Float())
	default:
		return false
	}
}

// IsValidString reports whether every input is a non-empty string.
// Called with no inputs it returns true.
func IsValidString(inputs ...any) bool {
	for _, input := range inputs {
		v := reflect.ValueOf(input)
		if v.Kind() != reflect.String || v.Len() == 0 {
			return false
		}
	}

	return true
}

// IsValidObject reports whether obj is present and every one of its
// properties is truthy. Properties named in nullable are exempt from the
// check, which lets a not-yet-persisted entity carry a zero id.
//
// Structs (or pointers to structs) are inspected by JSON field name; maps
// with string keys are inspected by key.
func IsValidObject(obj any, nullable ...string) bool {
	v, ok := indirect(reflect.ValueOf(obj))
	if !ok {
		return false
	}

	exempt := make(map[string]struct{}, len(nullable))
	for _, name := range nullable {
		exempt[name] = struct{}{}
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			name, exported := jsonName(t.Field(i))
			if !exported {
				continue
			}
			if _, skip := exempt[name]; skip {
				continue
			}
			if !truthy(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return truthy(v)
		}
		iter := v.MapRange()
		for iter.Next() {
			if _, skip := exempt[iter.Key().String()]; skip {
				continue
			}
			if !truthy(iter.Value()) {
				return false
			}
		}
		return true
	default:
		return truthy(v)
	}
}

// HasData reports whether obj is present and holds at least one value.
//
// Services run it on list lookups to tell "found" from "empty": nil,
// zero-valued structs, and empty slices, maps and strings have no data.
func HasData(obj any) bool {
	v, ok := indirect(reflect.ValueOf(obj))
	if !ok {
		return false
	}

	switch v.Kind() {
	case reflect.Struct:
		return !v.IsZero()
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return v.Len() > 0
	default:
		return false
	}
}

// IsPropertyOf reports whether propName is one of the JSON property names
// of typeOrInstance. typeOrInstance may be a struct value, a pointer to a
// struct (including a nil one) or a map with string keys.
func IsPropertyOf(propName string, typeOrInstance any) bool {
	if propName == "" || typeOrInstance == nil {
		return false
	}

	t := reflect.TypeOf(typeOrInstance)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			if name, exported := jsonName(t.Field(i)); exported && name == propName {
				return true
			}
		}
		return false
	case reflect.Map:
		v, ok := indirect(reflect.ValueOf(typeOrInstance))
		if !ok || t.Key().Kind() != reflect.String {
			return false
		}
		return v.MapIndex(reflect.ValueOf(propName).Convert(t.Key())).IsValid()
	default:
		return false
	}
}

func isPositiveInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f > 0 && f == math.Trunc(f)
}

// truthy reports whether a single property value counts as present.
func truthy(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return truthy(v.Elem())
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return v.Len() > 0
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return !v.IsNil()
	default:
		return true
	}
}

// indirect dereferences pointers and interfaces. ok is false for nil.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// jsonName returns the property name encoding/json would use for f.
// exported is false for unexported fields and fields tagged "-".
func jsonName(f reflect.StructField) (name string, exported bool) {
	if !f.IsExported() {
		return "", false
	}

	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}

	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}

	return name, true
}
