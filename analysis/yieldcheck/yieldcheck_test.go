package yieldcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/stealthrocket/gen/analysis/yieldcheck"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), yieldcheck.Analyzer, "a")
}
