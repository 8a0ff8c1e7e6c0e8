package value

// Add implements the polymorphic "+" operator. Int+Int is numeric
// addition. Any combination touching a Seq concatenates, treating a
// lone Int operand as if it were a one-element sequence, and produces
// a freshly allocated sequence with a reference count of zero.
func Add(a, b Value) Value {
	if a.IsInt() && b.IsInt() {
		return Int(a.I + b.I)
	}
	out := NewSequence()
	switch {
	case a.IsSeq() && b.IsSeq():
		appendAll(out, a.S)
		appendAll(out, b.S)
	case a.IsSeq():
		appendAll(out, a.S)
		out.Push(b.I)
	case b.IsSeq():
		out.Push(a.I)
		appendAll(out, b.S)
	}
	return Seq(out)
}

func appendAll(dst, src *Sequence) {
	for i := 0; i < src.Len(); i++ {
		dst.Push(src.At(i))
	}
}

// Sub implements "-", which is defined only for two integers.
func Sub(a, b Value) Value {
	requireInt(a)
	requireInt(b)
	return Int(a.I - b.I)
}

// Mul implements the polymorphic "*" operator. Int*Int is numeric
// multiplication, Seq*Int and Int*Seq repeat the sequence that many
// times, and Seq*Seq is a type mismatch.
func Mul(a, b Value) Value {
	switch {
	case a.IsInt() && b.IsInt():
		return Int(a.I * b.I)
	case a.IsSeq() && b.IsSeq():
		panic(Errorf("Type mismatch"))
	case a.IsSeq():
		return repeat(a.S, b.I)
	default:
		return repeat(b.S, a.I)
	}
}

func repeat(s *Sequence, n int64) Value {
	out := NewSequence()
	for i := int64(0); i < n; i++ {
		appendAll(out, s)
	}
	return Seq(out)
}

// Div implements "/", which is defined only for two integers and
// panics on division by zero.
func Div(a, b Value) Value {
	requireInt(a)
	requireInt(b)
	if b.I == 0 {
		panic(Errorf("Divide by zero"))
	}
	return Int(a.I / b.I)
}

// Less implements "<". Both operands must be the same kind: integers
// compare numerically, sequences compare lexicographically with a
// shorter prefix considered less than a longer sequence that agrees
// with it on every shared element.
func Less(a, b Value) Value {
	if a.Kind != b.Kind {
		panic(Errorf("Type mismatch"))
	}
	if a.IsInt() {
		return boolValue(a.I < b.I)
	}
	n := a.S.Len()
	if b.S.Len() < n {
		n = b.S.Len()
	}
	for i := 0; i < n; i++ {
		if a.S.At(i) != b.S.At(i) {
			return boolValue(a.S.At(i) < b.S.At(i))
		}
	}
	return boolValue(a.S.Len() < b.S.Len())
}

// Equals implements "==". Unlike Less, mismatched kinds are allowed:
// an Int is never equal to a Seq.
func Equals(a, b Value) Value {
	if a.IsInt() && b.IsInt() {
		return boolValue(a.I == b.I)
	}
	if a.Kind != b.Kind {
		return Int(0)
	}
	if a.S.Len() != b.S.Len() {
		return Int(0)
	}
	for i := 0; i < a.S.Len(); i++ {
		if a.S.At(i) != b.S.At(i) {
			return Int(0)
		}
	}
	return Int(1)
}

// IndexAt implements the "[" indexing operator: seq must be a Seq,
// idx must be an Int in range.
func IndexAt(seq, idx Value) Value {
	requireSeq(seq)
	requireInt(idx)
	i := idx.I
	if i < 0 || i >= int64(seq.S.Len()) {
		panic(Errorf("Index out of bounds"))
	}
	return Int(seq.S.At(int(i)))
}

// LenOf implements the "len" unary operator: its operand must be a
// Seq.
func LenOf(v Value) Value {
	requireSeq(v)
	return Int(int64(v.S.Len()))
}
