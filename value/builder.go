package value

// ArrayBuilder accumulates elements for a new Array. Build may be called more
// than once; each call returns an independent Value.
type ArrayBuilder struct {
	items []Value
}

func ArrayBuild() *ArrayBuilder { return &ArrayBuilder{} }

func (b *ArrayBuilder) Add(v Value) *ArrayBuilder {
	b.items = append(b.items, v)
	return b
}

func (b *ArrayBuilder) Build() Value {
	return ArrayOf(b.items...)
}

// ObjectBuilder accumulates members for a new Object. Setting a key twice keeps
// its first position and the last value.
type ObjectBuilder struct {
	keys []string
	vals map[string]Value
}

func ObjectBuild() *ObjectBuilder {
	return &ObjectBuilder{vals: make(map[string]Value)}
}

func (b *ObjectBuilder) Set(key string, v Value) *ObjectBuilder {
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = v
	return b
}

func (b *ObjectBuilder) Build() Value {
	vals := make(map[string]Value, len(b.vals))
	for k, v := range b.vals {
		vals[k] = v
	}
	return Value{kind: ObjectType, obj: &object{
		keys: append([]string(nil), b.keys...),
		vals: vals,
	}}
}

// build hands the builder's storage to the Value without copying; the builder
// must not be used afterwards.
func (b *ObjectBuilder) build() Value {
	return Value{kind: ObjectType, obj: &object{keys: b.keys, vals: b.vals}}
}
