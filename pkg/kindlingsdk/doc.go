// Package kindlingsdk is the Go client for the Kindling API.
//
// It carries the request/response types shared with the server
// handlers, a thin HTTP client for the account and member endpoints,
// and a Session: an observable client-side store of the logged-in flag
// and current user that UI layers can subscribe to.
package kindlingsdk
