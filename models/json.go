package models

// JSON is the generic payload shape exchanged with the DigitalOcean API.
// Provider responses are forwarded to the caller without reshaping, so the
// gateway deliberately does not model their full schemas.
type JSON = map[string]any
