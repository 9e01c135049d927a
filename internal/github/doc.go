// Package github is the upstream side of ghmcp: a bearer-token GET client for
// the GitHub REST API and the one function that knows how GitHub signals
// errors in a response body.
//
// The client never looks at HTTP status codes. A reply is either a decoded
// JSON document or, when decoding fails, the raw text.
package github
