// Package template parses html/template and text/template files
// out of a filesystem layered over the templates this package embeds.
//
// The embedded templates render variant lists:
// tmpl/multiple_choices.html for 300 Multiple Choices
// and tmpl/not_acceptable.txt for 406 Not Acceptable.
// A file of the same name in the user filesystem replaces either one.
package template
