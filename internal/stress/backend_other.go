//go:build !linux

package stress

func platformBackends() map[string]Factory { return nil }
