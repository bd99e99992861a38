// Package models defines the core domain models for the budget tracker.
//
// # Entities
//
// Two entity types are persisted:
//   - Expense: a single amount spent against a category on a calendar date
//   - Category: a uniquely named bucket offered to clients when recording expenses
//
// Expense.Category is a free-form string. It is not checked against the
// Category set, so an expense may reference a category that was never added.
//
// # Derived models
//
// The remaining types are read-only views produced by the storage layer or the
// analytics engine (CategoryTotal, TrendReport, Breakdown, ...). They carry JSON
// tags matching the wire format clients already consume.
//
// # Design Principles
//
//  1. Values, not handles: every query returns freshly decoded structs
//  2. Dates travel as ISO strings (YYYY-MM-DD), which sort chronologically
//  3. Amounts are float64; coercion from raw input goes through ParseAmount
package models
