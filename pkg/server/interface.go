/*
Package server implements msgpack IPC for the stemming service.

The server reads binary msgpack requests from stdin and writes responses to
stdout, one message per request, processed synchronously with timing info
included in responses. This lets editors and annotation tools stem words
through process communication without linking the library.

A stem request carries an ID and the surface word:

	{"id": "req_001", "w": "केटाहरूले"}

The response carries the split plus the elapsed time in microseconds:

	{"id": "req_001", "r": "केटाहरू", "s": "ले", "t": 42}

Invalid requests (missing word, undecodable payload) get an error reply with
the same ID when one was readable:

	{"id": "req_001", "e": "missing 'w' field", "c": 400}

Per-request errors never stop the loop; the server exits cleanly on EOF.
*/
package server

// StemRequest - minimal stemming request
type StemRequest struct {
	ID   string `msgpack:"id"`
	Word string `msgpack:"w"`
}

// StemResponse - stemming response
type StemResponse struct {
	ID        string `msgpack:"id"`
	Root      string `msgpack:"r"`
	Suffix    string `msgpack:"s"`
	TimeTaken int64  `msgpack:"t"`
}

// StemError holds basic error information for failed requests
type StemError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
