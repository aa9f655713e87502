package session

import "errors"

// ErrMalformedResponse marks a reasoning response without a usable text
// field. It propagates like any transient call failure: the attempt is
// dropped and the same unanalyzed content is retried on the next eligible
// trigger.
var ErrMalformedResponse = errors.New("reasoning response has no usable text")
