package engine

import "github.com/reoring/pj/internal/scan"

// duplicate applies the duplicate key policy to tok, a key already present in
// the innermost object. Under DupWarn the key is recorded and reading goes on.
func (e *enforcingSource) duplicate(tok scan.Token) error {
	issue := IssueError{
		Code:    CodeDuplicateKey,
		Path:    normalizeIssuePath(e.path),
		Message: "key '" + tok.Text + "' duplicated",
		Token:   tok,
	}
	if e.opt.OnDuplicate == DupWarn {
		if e.opt.MaxWarnings > 0 && len(e.dups) >= e.opt.MaxWarnings {
			return nil
		}
		e.dups = append(e.dups, issue)
		return nil
	}
	return &issue
}

func (e *enforcingSource) Duplicates() []IssueError { return e.dups }
