// Package server wires and runs the gateway's HTTP server.
//
// It owns the serving half of the router lifecycle: the sealed route table
// starts serving when RunServer is called and transitions to stopped via
// signal-driven graceful shutdown.
package server
