package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address, leaving the gateway with no
// transport to serve. This is a fatal misconfiguration surfaced at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
