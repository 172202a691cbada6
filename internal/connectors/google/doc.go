// Package google provides shared infrastructure for the Google Drive fetcher.
//
// It contains:
//   - A token source built from a bearer access token
//   - The Drive service factory
//   - Error mapping for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	ts := google.NewTokenSource(accessToken)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// The access token must carry https://www.googleapis.com/auth/drive.readonly.
package google
