// Package workflow maps parsed BizTalk pipeline documents onto workflow
// action trees for the target platform. The mapper walks the pipeline's
// stages in canonical order, consults the component registry for migration
// metadata, and dispatches every component through an ordered rule table to
// select the target action kind and synthesize its configuration guidance.
//
// Mapping is a pure, synchronous, in-memory transform: each invocation owns
// its own sequence counter and produces a fresh tree with no references back
// into the input document.
package workflow
