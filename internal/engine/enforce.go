package engine

import (
	"strconv"
	"strings"

	"github.com/reoring/pj/internal/scan"
)

// Enforcement wrapper for a scan.Source that applies the nesting depth limit
// and the duplicate key policy while tracking the JSON Pointer of the value
// being read.

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// Codes produced by the enforcement layer.
const (
	CodeMaxDepthExceeded = "max_depth_exceeded"
	CodeDuplicateKey     = "duplicate_key"
)

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	// MaxDepth bounds the number of simultaneously open containers; <= 0
	// disables the check.
	MaxDepth int
	// MaxWarnings caps the duplicates recorded under DupWarn; <= 0 means
	// unlimited.
	MaxWarnings int
}

// IssueError is a failure raised by the enforcement layer itself.
type IssueError struct {
	Code    string
	Path    string
	Message string
	Token   scan.Token
}

func (e *IssueError) Error() string { return e.Message }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// Source is a scan.Source that also reports where in the document it is.
type Source interface {
	scan.Source
	// Path returns the pointer of the value that was being read when the most
	// recent token arrived ("/" for the root).
	Path() string
	// Depth returns the number of open containers.
	Depth() int
	// Duplicates returns the repeated keys recorded under DupWarn.
	Duplicates() []IssueError
}

// WrapWithEnforcement returns a Source that enforces the maximum nesting depth
// and the duplicate key policy.
func WrapWithEnforcement(inner scan.Source, opt EnforceOptions) Source {
	return &enforcingSource{inner: inner, opt: opt}
}

type enforcingSource struct {
	inner scan.Source
	opt   EnforceOptions
	stack []frame
	path  string
	prev  string
	dups  []IssueError
}

func (e *enforcingSource) Depth() int { return len(e.stack) }

func (e *enforcingSource) Path() string { return normalizeIssuePath(e.prev) }

func (e *enforcingSource) Next() (scan.Token, error) {
	tok, err := e.inner.Next()
	if err != nil {
		return scan.Token{}, err
	}
	e.prev = e.path

	switch tok.Kind {
	case scan.KindBeginObject, scan.KindBeginArray:
		path := e.valuePath()
		e.path = path
		f := frame{kind: kindArray, path: path}
		if tok.Kind == scan.KindBeginObject {
			f.kind = kindObject
			f.expectingKey = true
			if e.opt.OnDuplicate != DupIgnore {
				f.keys = make(map[string]struct{})
			}
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return scan.Token{}, &IssueError{
				Code:    CodeMaxDepthExceeded,
				Path:    normalizeIssuePath(path),
				Message: "max depth " + strconv.Itoa(e.opt.MaxDepth) + " exceeded",
				Token:   tok,
			}
		}
	case scan.KindEndObject, scan.KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		if n := len(e.stack); n > 0 {
			e.path = e.stack[n-1].path
		} else {
			e.path = ""
		}
	case scan.KindComma:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == kindObject {
				top.expectingKey = true
				top.pendingKey = ""
			}
		}
	case scan.KindString:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				top.pendingKey = tok.Text
				e.path = joinJSONPointer(top.path, tok.Text)
				if top.keys != nil {
					if _, ok := top.keys[tok.Text]; ok {
						if err := e.duplicate(tok); err != nil {
							return scan.Token{}, err
						}
					}
					top.keys[tok.Text] = struct{}{}
				}
				break
			}
		}
		e.path = e.valuePath()
	case scan.KindNumber, scan.KindTrue, scan.KindFalse, scan.KindNull:
		e.path = e.valuePath()
	}
	return tok, nil
}

// valuePath returns the pointer of a value starting at the current position.
func (e *enforcingSource) valuePath() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.kind == kindArray {
		p := joinJSONPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return joinJSONPointer(top.path, top.pendingKey)
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapeJSONPointerToken(s string) string {
	return jsonPointerEscaper.Replace(s)
}

func joinJSONPointer(base, token string) string {
	return base + "/" + escapeJSONPointerToken(token)
}
