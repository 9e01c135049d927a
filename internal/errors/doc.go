// Package errors provides typed error handling for ghmcp operations.
//
// Every error carries a stable code so the CLI can map it to an exit status
// and the dispatcher can turn it into a tool failure message.
//
// Example usage:
//
//	// Creating errors
//	err := errors.UnknownTool("bogus_tool")
//	err := errors.UpstreamError("Not Found")
//
//	// Wrapping errors
//	err := errors.UpstreamUnreachable("/user", netErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeMissingToken) {
//	    // refuse to start
//	}
//
//	// Message without the code prefix, as shown to MCP clients
//	msg := errors.Message(err)
//
//	// Stdlib compatibility
//	var ghErr *errors.Error
//	if errors.As(err, &ghErr) {
//	    fmt.Println(ghErr.Code, ghErr.Message)
//	}
package errors
