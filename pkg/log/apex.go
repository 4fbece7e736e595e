// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package log

import (
	apex "github.com/apex/log"
)

type apexWrapper struct {
	apex.Interface
}

func (w apexWrapper) WithField(k string, v interface{}) Interface {
	return &apexWrapper{w.Interface.WithField(k, v)}
}
func (w apexWrapper) WithFields(fields Fielder) Interface {
	return &apexWrapper{w.Interface.WithFields(apex.Fields(fields.Fields()))}
}
func (w apexWrapper) WithError(err error) Interface {
	return &apexWrapper{w.Interface.WithError(err)}
}

// WrapApex wraps an apex logger
func WrapApex(w apex.Interface) Interface {
	return &apexWrapper{w}
}

// Default is the global apex-backed logger
var Default Interface = &apexWrapper{apex.Log}

// SetLevelFromString proxies to the global apex logger
func SetLevelFromString(s string) { apex.SetLevelFromString(s) }
