// Package incident defines the unified incident model and the pure lookup
// services built around it: keyword categorization and the official SFD
// type-code table.
package incident
