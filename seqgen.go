// Package seqgen expands sequence invocations over token trees.
//
// An invocation names a placeholder, an integer range and a braced body:
//
//	N in 0..3 { fn f~N() -> usize { N } }
//
// The body is repeated once per index. A bare N becomes the index numeral
// and f~N becomes the single identifier f0, f1, ...:
//
//	fn f0() -> usize { 0 } fn f1() -> usize { 1 } fn f2() -> usize { 2 }
//
// # Basic Usage
//
//	engine := seqgen.MustNew()
//	out, err := engine.ExpandSource("N in 0..=2 { X, }")
//	// out: "X, X, X,"
//
// Callers that already hold tokens use Expand directly:
//
//	tokens, _ := seqgen.Tokenize("N in 1..4 { V~N, }")
//	expanded, err := engine.Expand(tokens)
//
// # Repetition Markers
//
// When the body contains a #( ... )* marker, only the marked tokens are
// repeated and everything around them appears once. The marker may sit
// inside any bracketed structure:
//
//	N in 0..3 { enum E { #(V~N,)* } }
//	// enum E { V0, V1, V2, }
//
// A body may contain at most one marker.
//
// # Source Files
//
// ProcessSource rewrites every seq!(...), seq![...] and seq!{...} call site
// in a whole file. Expansions are scanned again, so invocations may nest:
//
//	out, err := engine.ProcessSource(src)
//
// # Error Handling
//
// Every failure aborts the whole expansion; no partial output is returned.
// Errors are *cuserr.CustomError values with a SEQGEN_* code and position
// metadata. AsDiagnostic recovers the kind, the offending construct and the
// position:
//
//	if diag, ok := seqgen.AsDiagnostic(err); ok {
//	    fmt.Println(diag.Position, diag)
//	}
//
// Token trees are walked recursively, so pathologically deep bracket
// nesting can exhaust the goroutine stack.
//
// # Configuration
//
// Customize the engine with functional options or a YAML config file:
//
//	engine, _ := seqgen.New(
//	    seqgen.WithSyntax(seqgen.Syntax{Marker: '@', Repeat: '+', Splice: '$'}),
//	    seqgen.WithMaxRepetitions(1000),
//	    seqgen.WithLogger(logger),
//	)
//
//	cfg, _ := seqgen.LoadConfig("seqgen.yaml")
//	engine, _ = seqgen.New(cfg.Options()...)
package seqgen
