// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (questions, tiers, score records) and contracts
// (generator, checker, store, services) only.
package domain
