package domain

// Property is a schemaless property listing document. Callers supply arbitrary
// fields; the repository adds "id", "timestamp" and "updatedAt" on the way in
// and out. Keeping it a map preserves the caller's shape verbatim.
type Property map[string]interface{}
