// Package lifecycle holds shared start/stop policy for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and connection pools.
const DefaultTimeout = 10 * time.Second
