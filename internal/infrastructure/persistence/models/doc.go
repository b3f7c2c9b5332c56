// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns: domain types carry no GORM tags, and each model's ToDomain and
// FromDomain mappers do the conversion at the repository boundary.
package models
