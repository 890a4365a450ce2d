// Package lifecycle holds shared start/stop timing for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (pings, index warm-up) and graceful shutdown.
const DefaultTimeout = 10 * time.Second
