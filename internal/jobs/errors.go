package jobs

import "errors"

// ErrUpstreamUnreachable indicates the job service could not be reached at all.
// Error statuses returned by the job service are not errors for the gateway.
var ErrUpstreamUnreachable = errors.New("job service unreachable")
