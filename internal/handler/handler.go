// Package handler is the HTTP layer, the first entry point after the
// router.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes JSON responses. Errors are left to the
// global error handler.
package handler
