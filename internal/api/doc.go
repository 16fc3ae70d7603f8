// Package api implements the HTTP gateway to the BYETZ backend.
//
// [Client] is a pure request/decode boundary: every call is exactly one round
// trip with no retries, backoff, or caching. The current bearer token, if the
// credential store holds one, is attached to every request; absence of a token
// is not an error; the call proceeds unauthenticated and the server decides.
//
// # Error Handling
//
// Responses map onto the shared taxonomy:
//   - [shared.ErrInvalidRequest] : malformed URL, a programming error
//   - [shared.ErrUnauthorized] : 401, so callers can special-case expiry
//   - [shared.ErrServer] : any other non-2xx, status retrievable via [StatusCode]
//   - [shared.ErrDecoding] : 2xx body that does not match the expected shape
//   - [shared.ErrNetwork] : transport failure, wrapping the underlying cause
//
// Stream and thumbnail URLs carry the token as a query parameter instead of a
// header because they are consumed by a media player, not this client.
package api
