// Package graph holds the data model of a social-network Graph API client.
//
// Every type keeps its state in unexported fields behind Get/Is/Set accessors,
// with Add/Remove pairs for list fields, so the whole model can be verified
// with package accessor. Event lists its accessors explicitly instead.
package graph
