package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// stdinName selects standard input instead of a file.
const stdinName = "-"

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// readInput returns the document named by name. Files ending in .gz or .zst
// are decompressed; the result must be valid UTF-8.
func readInput(name string, stdin io.Reader) ([]byte, error) {
	var r io.Reader = stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer func() {
			if errClose := f.Close(); errClose != nil {
				log.Debug("cannot close input", "file", name, "error", errClose.Error())
			}
		}()
		r = f
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		defer func() { _ = zr.Close() }()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}
	log.Debug("input read", "name", name, "bytes", len(data))
	return data, nil
}
