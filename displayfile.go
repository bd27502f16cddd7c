package easel

import "fmt"

// DisplayFile is the ordered, name-addressable collection of scene entities.
// Insertion order is paint order: later entities draw on top. Names are
// unique for the lifetime of the collection.
type DisplayFile struct {
	order  []Drawable
	byName map[string]Drawable
}

// NewDisplayFile returns an empty display file.
func NewDisplayFile() *DisplayFile {
	return &DisplayFile{byName: make(map[string]Drawable)}
}

// add appends d. The name must come from unusedName.
func (f *DisplayFile) add(d Drawable) {
	if _, ok := f.byName[d.Name()]; ok {
		panic(fmt.Sprintf("easel: duplicate object name %q", d.Name()))
	}
	f.order = append(f.order, d)
	f.byName[d.Name()] = d
}

// unusedName returns the first "<prefix> <n>" (n = 1, 2, ...) not taken by
// an existing entity.
func (f *DisplayFile) unusedName(prefix string) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s %d", prefix, n)
		if _, ok := f.byName[name]; !ok {
			return name
		}
	}
}

// Get returns the entity with the given name, or *UnknownObjectError.
func (f *DisplayFile) Get(name string) (Drawable, error) {
	d, ok := f.byName[name]
	if !ok {
		return nil, &UnknownObjectError{Name: name}
	}
	return d, nil
}

// Names returns the entity names in creation order.
func (f *DisplayFile) Names() []string {
	names := make([]string, len(f.order))
	for i, d := range f.order {
		names[i] = d.Name()
	}
	return names
}

// Drawables returns the entities in creation order. The slice is a copy; the
// entities are shared.
func (f *DisplayFile) Drawables() []Drawable {
	out := make([]Drawable, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of entities.
func (f *DisplayFile) Len() int {
	return len(f.order)
}
