package xgoid_test

import (
	"fmt"

	"github.com/omeyang/xsync/pkg/sync/xgoid"
)

func ExampleCurrent() {
	id := xgoid.Current()
	fmt.Println(id != xgoid.None)
	// Output:
	// true
}
