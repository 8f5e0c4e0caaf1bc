// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"
	"log"
)

// Error returns the accumulated error status of the manager, or the empty
// string if nothing went wrong yet.
func (m *Manager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored reports whether an operation on this manager has failed.
func (m *Manager) Errored() bool {
	return m.err != nil
}

// seterror records a failure on the manager. Once set, an error is sticky:
// later failures are chained onto the existing message with "; " instead of
// overwriting it, so the first root cause is never lost. It always returns
// the node id of the Undefined terminal so call sites can write
// "return m.seterror(...)" in place of the node id they would otherwise
// produce.
func (m *Manager) seterror(format string, a ...interface{}) int32 {
	if m.err != nil {
		format = format + "; " + m.Error()
		m.err = fmt.Errorf(format, a...)
		return m.undefID
	}
	m.err = fmt.Errorf(format, a...)
	if _DEBUG {
		log.Println(m.err)
	}
	return m.undefID
}
