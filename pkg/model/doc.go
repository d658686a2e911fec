// Package model defines the database models for the collections service.
//
// This package contains GORM models that map to the PostgreSQL schema in
// db/migrations.
//
// # Core Models
//
//   - Collection: hierarchical container nodes, parent-pointer only
//   - Operation: lifecycle metadata for mutations, written transactionally
//     alongside the entity they describe
//
// The collections table carries a partial unique index on (parent_id, title)
// over live rows, which backstops the sibling-title uniqueness invariant
// against concurrent creates.
package model
