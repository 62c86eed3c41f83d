package pj

// DefaultMaxDepth bounds container nesting when DecodeOpt.MaxDepth or
// EncodeOpt.MaxDepth is zero.
const DefaultMaxDepth = 512

// DefaultIndent is the per-level indentation unit of pretty output.
const DefaultIndent = "  "

// Severity expresses how a policy violation is handled.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Reject
)

// Strictness configures enforcement of optional RFC 8259 interoperability
// rules.
type Strictness struct {
	// OnDuplicateKey is Ignore (last write wins), Warn (last write wins and
	// each repeated key is reported by DecodeWithWarnings) or Reject.
	OnDuplicateKey Severity
	// MaxWarnings caps the warnings collected under Warn; 0 means unlimited.
	MaxWarnings int
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 means DefaultMaxDepth.
	MaxBytes   int64 // 0 means unlimited.
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	Indent   string // Empty means DefaultIndent.
	Compact  bool   // No insignificant whitespace; the trailing newline stays.
	MaxDepth int    // 0 means DefaultMaxDepth.
}

func (o DecodeOpt) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o EncodeOpt) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o EncodeOpt) indent() string {
	if o.Indent == "" {
		return DefaultIndent
	}
	return o.Indent
}

func lastOpt[T any](opts []T) T {
	var opt T
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
