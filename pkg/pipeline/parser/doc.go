// Package parser decodes BizTalk pipeline documents (.btp files) into the
// in-memory model consumed by the mapping engine. The engine itself never
// touches the serialized form; this package is its only entry point for raw
// pipeline XML.
package parser
