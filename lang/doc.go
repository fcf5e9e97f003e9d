// Package lang implements the closure capture grammar: a parser for
// capture-annotated closure literals and a generator that rewrites them into
// plain host-language code.
//
// # Philosophy
//
// The grammar is deliberately tiny. A closure literal may prefix its
// parameter list with capture entries, each naming one variable to clone from
// the enclosing environment:
//
//	|@s1| s1                          # clone s1, no parameters
//	|@mut s1, @s2| { s1 = s1 + s2 }   # mutable clone of s1, clone of s2
//	|@s1, x: u32| s1 + x              # one capture, one ordinary parameter
//
// The rewrite binds each captured name to a clone of its outer namesake and
// emits a move closure whose parameter list holds only the ordinary
// parameters, in their original order:
//
//	{ let mut s1 = s1.clone(); let s2 = s2.clone(); move || { s1 = s1 + s2 } }
//
// Ordinary parameters, the return type, and the body are opaque byte spans of
// the original source. They are relocated verbatim and never reparsed, so the
// package needs no expression grammar. No parser generator, no generated
// code: the grammar is small enough for a hand-written scanner and a
// single-pass recursive-descent parser.
//
// # Grammar
//
// Informal EBNF:
//
//	Closure    → "move"? "|" ParamList "|" ("->" ReturnType)? Body
//	ParamList  → (Entry ("," Entry)*)?
//	Entry      → Capture | Param
//	Capture    → "@" "mut"? Identifier
//	Param      → <opaque span, stops at top-level "," or "|">
//	ReturnType → <opaque span, stops at top-level "{">
//	Body       → <opaque span, everything remaining>
//
// Capture entries are legal only as a strict leading run: the first entry
// that is not a capture ends the run permanently, and any later "@…" entry is
// an ordinary opaque parameter, never reinterpreted as a capture. This is a
// fixed positional rule of the grammar, mirroring "cloned vars must be in
// front of closure parameters".
//
// # Host boundary
//
// [Expand] is the host embedding: given source text it locates every
// macro-style invocation (cc!(…) by default), parses the enclosed closure,
// and splices the generated replacement in place. The output contains no
// extended syntax and is directly consumable by the host toolchain. Whether
// a captured variable exists, or supports cloning, is the host compiler's
// concern; this package only emits the syntactic shape that triggers those
// semantics.
package lang
