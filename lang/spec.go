package lang

// CaptureEntry is one variable to clone from the enclosing environment.
type CaptureEntry struct {
	// Name is the captured identifier. The generated binding shadows the
	// outer name, so the closure body refers to the clone without rewriting.
	Name string

	// Mutable marks the generated binding as mutable.
	Mutable bool

	// Pos is the location of the capture marker in the source.
	Pos Pos
}

// ClosureSpec is the structured form of one capture-annotated closure
// literal. It is the sole artifact passed from the parser to the generator
// and fully determines the generated output.
//
// Params, ReturnType, and Body are opaque spans into Source: captured by
// reference, relocated verbatim, never reparsed.
type ClosureSpec struct {
	// ExplicitMove records a "move" qualifier written in the source.
	ExplicitMove bool

	// Captures lists the capture entries in source order. Every capture
	// precedes every element of Params in the source; the parser enforces
	// this positionally rather than by reordering.
	Captures []CaptureEntry

	// Params holds the ordinary closure parameters in source order.
	Params []Span

	// ReturnType is the span of the return-type annotation, zero when the
	// source has none.
	ReturnType Span

	// Body is the span of the closure body.
	Body Span

	// Source is the text the spans index into.
	Source string
}

// ParamTexts returns the verbatim text of each ordinary parameter, in source
// order.
func (c *ClosureSpec) ParamTexts() []string {
	if len(c.Params) == 0 {
		return nil
	}

	texts := make([]string, len(c.Params))
	for i, span := range c.Params {
		texts[i] = span.Text(c.Source)
	}

	return texts
}

// ReturnTypeText returns the verbatim return-type annotation, or "" when the
// source has none.
func (c *ClosureSpec) ReturnTypeText() string {
	return c.ReturnType.Text(c.Source)
}

// BodyText returns the verbatim closure body.
func (c *ClosureSpec) BodyText() string {
	return c.Body.Text(c.Source)
}

// MutableCount returns the number of captures marked mutable.
func (c *ClosureSpec) MutableCount() int {
	n := 0

	for _, capture := range c.Captures {
		if capture.Mutable {
			n++
		}
	}

	return n
}
