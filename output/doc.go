// Package output renders settings and check reports for the foodle CLI.
//
// Three formats are available: human (aligned text), json and yaml.
// Secrets are masked unless the caller explicitly asks to see them.
package output
