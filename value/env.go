package value

// MaxNameLength is the longest identifier the environment will hold,
// matching the parser's identifier grammar.
const MaxNameLength = 20

type binding struct {
	name string
	val  Value
}

// Environment is an ordered, linear-scan mapping from variable name to
// its current value. A lookup that misses returns Int(0): the
// language has no notion of reading an undeclared variable as an
// error, unlike most languages built on this shape of environment.
type Environment struct {
	vars []binding
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Lookup returns the value bound to name, or Int(0) if name has never
// been assigned. The returned Sequence handle, if any, is not grabbed;
// callers that store the result somewhere longer-lived must grab it
// themselves.
func (e *Environment) Lookup(name string) Value {
	for i := range e.vars {
		if e.vars[i].name == name {
			return e.vars[i].val
		}
	}
	return Int(0)
}

// Set binds name to v, releasing whatever sequence name was
// previously bound to. The caller is responsible for having grabbed v
// first if it holds a sequence.
func (e *Environment) Set(name string, v Value) {
	for i := range e.vars {
		if e.vars[i].name == name {
			if e.vars[i].val.IsSeq() {
				e.vars[i].val.S.Release()
			}
			e.vars[i].val = v
			return
		}
	}
	e.vars = append(e.vars, binding{name: name, val: v})
}

// Teardown releases every sequence the environment still holds. Call
// it once, when the environment is no longer needed.
func (e *Environment) Teardown() {
	for i := range e.vars {
		if e.vars[i].val.IsSeq() {
			e.vars[i].val.S.Release()
		}
	}
	e.vars = nil
}
