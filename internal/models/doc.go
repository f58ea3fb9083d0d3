// Package models defines the core domain models for the yard sale tracker.
//
// # Entities
//
//   - Seller: a participant whose items are being sold
//   - QuickItem: a reusable preset (name + amount + seller) for fast entry
//   - SoldItem: a permanent ledger record of a completed sale line
//   - LineItem: an entry in the pending transaction, not yet committed
//
// Dataset aggregates sellers, quick items and sold items. It is the unit of
// persistence and of export/import.
//
// # Relationships
//
// Entities reference sellers by ID string, never by pointer:
//  1. Deleting a seller deletes every QuickItem referencing it
//  2. A seller referenced by any SoldItem cannot be deleted
//  3. LineItems become SoldItems on confirmation, with fresh IDs
//
// Amounts are stored rounded to 2 decimal places. Totals are derived on
// read and never stored.
package models
