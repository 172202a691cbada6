// Package connectors holds the FileFetcher implementations that feed the
// parser. Each fetcher knows how to turn an identifier for one source
// (a local path, a Google Drive file ID) into a domain.RawFile.
package connectors
