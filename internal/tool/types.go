package tool

// InputSchema is the JSON-Schema-shaped parameter declaration carried by a
// tool manifest. Properties are kept as raw maps and passed through to the
// providers untouched; no schema validation happens on the client side.
type InputSchema struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Required   []string       `json:"required,omitempty"`
}

// ManifestEntry describes one callable tool advertised by the MCP server.
// The manifest is produced once at connection time and is immutable for the
// lifetime of the session.
type ManifestEntry struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// Names returns the manifest entry names in manifest order.
func Names(entries []ManifestEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
