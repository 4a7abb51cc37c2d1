// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the evaluation instant. Use cases read it once per request.
type Clock interface {
	Now() time.Time
}
