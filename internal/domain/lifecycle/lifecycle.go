// Package lifecycle holds process lifecycle constants shared by the
// delivery and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown of long-lived
// components (HTTP server, DB pool).
const DefaultTimeout = 15 * time.Second
