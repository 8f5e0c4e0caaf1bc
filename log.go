// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "log"

// logf is a thin wrapper around log.Printf gated by _LOGLEVEL, so call
// sites read naturally without repeating the guard everywhere. It is a
// no-op unless the binary was built with -tags debug.
func logf(format string, a ...interface{}) {
	if _LOGLEVEL > 0 {
		log.Printf(format, a...)
	}
}
