// Command try2check reports solo.Try2, solo.Try2Err and solo.Unwrap calls that are not
// followed by an immediate early return.
//
// Usage:
//
//	try2check [-config try2check.yaml] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/ib-77/try2/internal/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
