// Package model provides the data structures for parsed BizTalk pipeline documents.
// It defines the document, its stages, the components inside each stage and their
// configuration properties, together with the fixed stage-category metadata.
package model
