// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer-token authentication, request
// tracing, access logging, and response-envelope encoding are handled in this
// package before requests are delegated to the service layer.
//
// Every route composed through [Router.Register] renders its outcome as the
// uniform response envelope: {"status":"success","data":...} on success,
// {"status":"error","message":...} on failure. Handlers never write to the
// response directly.
package http
