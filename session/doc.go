// Package session holds the state of one curve-matching session: the list of
// analyzed source/reference pairs, the aggregation parameters and the
// default channel mode.
//
// A Session is safe for concurrent use. Audio loading and spectral analysis
// run without holding the session lock; only the final insertion into the
// curve set is serialised.
package session
