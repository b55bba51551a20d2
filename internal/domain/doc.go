// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (carrier/key/frame state), contracts (interfaces)
// and the structured error taxonomy only.
package domain
