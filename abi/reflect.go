package abi

import "reflect"

// Reflect is the default Extractor.
var Reflect Extractor = reflectExtractor{}

type reflectExtractor struct{}

// Extract copies v into freshly allocated storage of v's dynamic type.
func (reflectExtractor) Extract(v any) Object {
	if v == nil {
		return Object{}
	}

	rv := reflect.ValueOf(v)
	storage := reflect.New(rv.Type()).Elem()
	storage.Set(rv)

	return Object{typ: rv.Type(), storage: storage}
}
