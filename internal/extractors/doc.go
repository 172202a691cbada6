// Package extractors provides the format strategies that turn file bytes
// into normalised text, and the registry that maps each FormatKind to one.
//
// Each extractor is independent: a fault in one format never reaches
// another. Extractors report failures as errors and leave the decision
// of how to degrade to the parser.
package extractors
