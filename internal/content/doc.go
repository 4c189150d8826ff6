// Package content holds the portfolio data model and the repository every
// page reads through.
//
// Rows arrive as loosely typed JSON from the backend. The value types in this
// package (StringList, ID, Date) normalize them once at decode time so page
// code never has to guard against malformed lists, numeric ids or mixed date
// layouts.
package content
