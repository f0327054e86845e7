// Command yieldcheck reports generator yielders used outside of their
// procedure's goroutine.
//
//	go vet -vettool=$(which yieldcheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/stealthrocket/gen/analysis/yieldcheck"
)

func main() {
	singlechecker.Main(yieldcheck.Analyzer)
}
