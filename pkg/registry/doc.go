// Package registry resolves BizTalk component identities to migration
// metadata. The mapping table is loaded once per process from a YAML or JSON
// mappings file (a default table is embedded in the binary) and is immutable
// afterwards. Resolution is total: every identity resolves to a usable
// mapping, falling back to a synthetic "Unknown Component" entry when nothing
// else matches.
package registry
