// Package errs defines the error shapes returned to API clients.
//
// Its purpose is to create specific error structures
// (FieldError for forms, HTTPError for API responses)
// so clients receive meaningful, actionable, and consistent
// error messages.
package errs
