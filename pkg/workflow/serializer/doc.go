// Package serializer writes produced workflows as Logic Apps style JSON
// definitions. It is the engine's only exit point to the target platform's
// file format; the mapping engine itself never serializes anything.
package serializer
