package gen

import "strconv"

// nameAllocator hands out unique names within one generation target, so
// lens constructors from different structs never collide (e.g. a struct
// "Person" with field "AddressCity" next to "PersonAddress" with "City").
type nameAllocator struct {
	taken map[string]struct{}
}

func newNameAllocator() *nameAllocator {
	return &nameAllocator{taken: make(map[string]struct{})}
}

// claim returns name if free, otherwise the first free name with a
// numeric suffix.
func (a *nameAllocator) claim(name string) string {
	if _, ok := a.taken[name]; !ok {
		a.taken[name] = struct{}{}
		return name
	}

	return nextFree(name, a.taken)
}

// nextFree appends the smallest numeric suffix (starting at 2) that makes
// name unique within taken, and records it.
func nextFree(name string, taken map[string]struct{}) string {
	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			taken[candidate] = struct{}{}
			return candidate
		}
	}
}
