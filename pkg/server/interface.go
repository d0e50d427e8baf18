/*
Package server exposes a speller over msgpack IPC and over HTTP.

# IPC

The msgpack server reads a stream of requests from stdin and writes one reply per
request to stdout. Before anything else it writes a ready status:

	{"status": "ready"}

Checking a word is the default action:

	{"id": "req_001", "w": "tooo"}

The reply carries the correction, whether one was found and whether it differs from the input:

	{"id": "req_001", "w": "tooo", "s": "too", "f": true, "c": true, "t": 12}

Completion lists dictionary words sharing a prefix, in lexical order:

	{"id": "req_002", "a": "complete", "w": "te", "l": 5}
	{"id": "req_002", "s": ["tea", "team", "teams", "ten", "test"], "c": 5, "t": 30}

Failures reply with an ErrorResponse. Codes follow HTTP: 400 for bad input, 413 for
words longer than the configured maximum.

	{"id": "req_003", "e": "missing word", "c": 400}

Times are in microseconds.

# HTTP

The same operations are served as JSON by HTTPServer:

	GET /check/{word}
	GET /complete/{prefix}?limit=n
	GET /health
*/
package server

// Actions understood by the msgpack server.
const (
	ActionCheck    = "check"
	ActionComplete = "complete"
	ActionHealth   = "health"
)

// Request is a single msgpack request. An empty Action means check.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"`
	Word   string `msgpack:"w"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CheckResponse is the reply to a check.
type CheckResponse struct {
	ID         string `msgpack:"id" json:"id,omitempty"`
	Word       string `msgpack:"w" json:"word"`
	Suggestion string `msgpack:"s" json:"suggestion"`
	Found      bool   `msgpack:"f" json:"found"`
	Corrected  bool   `msgpack:"c" json:"corrected"`
	Truncated  bool   `msgpack:"x,omitempty" json:"truncated,omitempty"`
	TimeTaken  int64  `msgpack:"t" json:"time_us"`
}

// CompleteResponse is the reply to a completion.
type CompleteResponse struct {
	ID          string   `msgpack:"id" json:"id,omitempty"`
	Suggestions []string `msgpack:"s" json:"suggestions"`
	Count       int      `msgpack:"c" json:"count"`
	TimeTaken   int64    `msgpack:"t" json:"time_us"`
}

// StatusResponse answers health checks and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty" json:"id,omitempty"`
	Status string `msgpack:"status" json:"status"`
	Words  int    `msgpack:"words,omitempty" json:"words,omitempty"`
}

// ErrorResponse holds basic error information
type ErrorResponse struct {
	ID    string `msgpack:"id" json:"id,omitempty"`
	Error string `msgpack:"e" json:"error"`
	Code  int    `msgpack:"c" json:"status"`
}
