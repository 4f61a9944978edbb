// Package core runs CSV and USV conversions for the web server, the command
// line and the terminal browser.
//
// The conversion engine itself lives in package usv. This package wraps it
// with what a deployed converter needs:
//
//   - [Service] reads bounded input, converts it and records the outcome.
//   - [ConvertLimiter] caps how many documents are held in memory at once.
//   - [HistoryStore] keeps recent conversions, in memory or in Postgres.
//   - [Service.ConvertFile] and [SaveAs] work on files next to the source.
//   - [Service.ConvertURL] reads documents through github.com/viant/afs.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - CONV001-CONV006: Document errors (empty, malformed, unknown format)
//   - FILE001-FILE005: File errors (size, existing output, extension)
//   - UPL002-UPL005: Capacity, cancellation and timeouts
//   - HIST001: History lookups
//   - DB004-DB005: History database connectivity
//   - RATE001: Request rate limiting
package core
