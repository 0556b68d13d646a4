package value

// Symbol is an interned name. Two symbols with the same spelling are
// identical by pointer, so equality and hashing by pointer-identity work
// for both `eq?` and environment lookup.
type Symbol struct {
	Name string
}

func (*Symbol) schemeValue() {}

func (s *Symbol) String() string { return s.Name }

// FrameMarker is the sentinel bound at the head of every call frame; a
// binding whose Sym is FrameMarker delimits the frame `define` inserts
// into. It is never produced by Intern, so it can never collide with a
// symbol read from source.
var FrameMarker = &Symbol{Name: "#<frame>"}

// Table interns symbol names for one interpreter. Two Tables never share
// symbols, which is what lets several interpreters coexist: a Symbol read
// by one Table's reader can never be pointer-equal to one read by another.
type Table struct {
	names map[string]*Symbol
}

// NewTable returns an empty interning table.
func NewTable() *Table {
	return &Table{names: make(map[string]*Symbol)}
}

// Intern returns the unique *Symbol for name, creating it on first use.
func (t *Table) Intern(name string) *Symbol {
	if s, ok := t.names[name]; ok {
		return s
	}
	s := &Symbol{Name: name}
	t.names[name] = s
	return s
}
