// Package mediatype parses, matches, and orders media ranges
// as they appear in an Accept header or a renderer declaration.
//
// A MediaType carries a client-stated Quality (the q parameter, default 1)
// and a server-stated Priority (default 0).
// Ordering puts higher Quality first, then the more specific range
// (text/html before text/* before */*), then higher Priority.
// Ranges equal on every key keep the order they were given in.
//
// Resolve ranks anything exposing media types against a parsed Accept header:
// candidates are grouped by the Accept ranges they satisfy and,
// within a group, keep the order they were handed in.
// A range with q=0 refuses the media types it matches most specifically.
package mediatype
