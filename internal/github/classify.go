package github

// UpstreamError reports whether a response is a GitHub error reply. GitHub
// marks failures with a JSON object carrying a non-empty "message" field;
// that message is returned verbatim.
func UpstreamError(resp *Response) (string, bool) {
	if resp == nil {
		return "", false
	}

	object, ok := resp.Value.(map[string]any)
	if !ok {
		return "", false
	}

	message, ok := object["message"].(string)
	if !ok || message == "" {
		return "", false
	}

	return message, true
}
