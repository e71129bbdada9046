package xconf_test

import (
	"fmt"

	"github.com/omeyang/xsync/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte("run:\n  backend: generic\n  workers: 4\n")
	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML,
		xconf.WithDefaults(map[string]any{"run.iterations": 1000}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	var run struct {
		Backend    string `koanf:"backend"`
		Workers    int    `koanf:"workers"`
		Iterations int    `koanf:"iterations"`
	}
	if err := cfg.Unmarshal("run", &run); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(run.Backend, run.Workers, run.Iterations)
	// Output: generic 4 1000
}
