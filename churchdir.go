// Package churchdir provides a CLI tool that scrapes church directory pages
// into a persistent members spreadsheet. It fetches a directory page,
// extracts contact records from the blurb markup, renders them as a table,
// and appends them to an xlsx workbook.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, excelize/, sqlite/).
package churchdir
