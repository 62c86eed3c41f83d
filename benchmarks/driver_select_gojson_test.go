//go:build gojson

package pj_test

import (
	"github.com/reoring/pj"
	drv "github.com/reoring/pj/source/gojson"
)

func init() {
	pj.SetJSONDriver(drv.Driver())
}
