package pj

// DetectDuplicateKeys reports every repeated object key in src, in input
// order. maxIssues > 0 caps the report. A malformed document yields its decode
// error.
func DetectDuplicateKeys(src []byte, maxIssues int) ([]*Error, error) {
	c := Codec{Decoding: DecodeOpt{Strictness: Strictness{OnDuplicateKey: Warn, MaxWarnings: maxIssues}}}
	_, warns, err := c.DecodeWithWarnings(src)
	return warns, err
}
