// Package ent holds the generated data access layer. Run `go generate
// ./ent` after editing any schema under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/upsert ./schema
