// Package classifier assigns a pipeline document to one of a closed set of
// default-pattern classifications. The mapper only cares whether a document is
// one of the two pass-through patterns; the full classification is exposed for
// reporting.
package classifier
