package server

import "errors"

// errNoServersAreCreated means the config enabled neither the HTTP nor the
// gRPC listener.
var errNoServersAreCreated = errors.New("no servers are created")
