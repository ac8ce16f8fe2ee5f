package gateway

import "errors"

// ErrRemoteService is returned for every failure mode of an analysis call:
// transport errors, non-2xx statuses, and malformed completions. Callers
// surface it to the user as a single "analysis failed" condition.
var ErrRemoteService = errors.New("remote analysis service error")
