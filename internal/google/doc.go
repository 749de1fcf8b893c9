// Package google provides OAuth2 authentication plumbing shared by the
// Google-backed event sources.
//
// Tokens are cached on disk per account under the user cache directory and
// refreshed through the standard oauth2 token source. The TokenProvider
// interface abstracts where tokens come from so clients can be constructed
// from either the file cache or a test double.
package google
