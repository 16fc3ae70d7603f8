// Package tasks implements the detached interaction-submission path.
//
// [Submitter] delivers like/dislike/save/skip/watch-complete facts to the
// backend as fire-and-forget work: callers return immediately, results are
// never reconciled back into session state, and failures are logged only.
// Eventual consistency is the accepted contract: there is no outbox and no
// retry. A rate limiter keeps a burst of gestures from hammering the server.
package tasks
