package exception

import "reflect"

type embedNode struct {
	typ  reflect.Type
	path []int
	// seen holds the struct types on the way here; embedding through
	// pointers can form cycles.
	seen []reflect.Type
}

// basePath finds the exported embedded field of type target or *target
// inside struct type rt. The search is breadth-first, like Go's field
// promotion: the shallowest match wins, and two matches at the same depth
// are ambiguous and yield no path.
func basePath(rt, target reflect.Type) ([]int, bool) {
	if rt.Kind() != reflect.Struct {
		return nil, false
	}

	level := []embedNode{{typ: rt, seen: []reflect.Type{rt}}}
	for len(level) > 0 {
		var found [][]int
		var next []embedNode

		for _, n := range level {
			for i := 0; i < n.typ.NumField(); i++ {
				f := n.typ.Field(i)
				if !f.Anonymous || !f.IsExported() {
					continue
				}

				path := make([]int, len(n.path)+1)
				copy(path, n.path)
				path[len(n.path)] = i

				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if f.Type == target || ft == target {
					found = append(found, path)
					continue
				}
				if ft.Kind() != reflect.Struct || containsType(n.seen, ft) {
					continue
				}

				seen := make([]reflect.Type, len(n.seen)+1)
				copy(seen, n.seen)
				seen[len(n.seen)] = ft
				next = append(next, embedNode{typ: ft, path: path, seen: seen})
			}
		}

		switch len(found) {
		case 0:
			level = next
		case 1:
			return found[0], true
		default:
			return nil, false
		}
	}

	return nil, false
}

// followPath walks path from the addressable struct v and returns a
// *target view of the field it ends at. Returns false if a nil embedded
// pointer is on the way.
func followPath(v reflect.Value, path []int, target reflect.Type) (reflect.Value, bool) {
	for _, i := range path {
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}

	if v.Type() == target {
		return v.Addr(), true
	}
	// The field is a *target.
	if v.IsNil() {
		return reflect.Value{}, false
	}
	return v, true
}

func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, seen := range types {
		if seen == t {
			return true
		}
	}
	return false
}
