// Package project provides the repository interface and types for
// balance project documents.
package project

import (
	"context"

	"github.com/balanceforge/balance-api/internal/entities/balance"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=projectmock github.com/balanceforge/balance-api/internal/repositories/project Repository

// CreateInput contains parameters for storing a new project
type CreateInput struct {
	Project *balance.Project
}

// CreateOutput contains the result of storing a new project
type CreateOutput struct{}

// GetInput contains parameters for retrieving a project
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a project
type GetOutput struct {
	Project *balance.Project
}

// UpdateInput contains parameters for replacing a project document.
// Project.Version must be the version the caller read; the update is
// rejected when the stored document has moved past it.
type UpdateInput struct {
	Project *balance.Project
}

// UpdateOutput contains the result of replacing a project document
type UpdateOutput struct {
	// NewVersion is the version the document carries after the write
	NewVersion int64
}

// ListInput contains parameters for listing projects
type ListInput struct{}

// ListOutput contains the result of listing projects
type ListOutput struct {
	Projects []*balance.Project
}

// Repository defines the interface for project document storage
type Repository interface {
	// Create stores a new project document and indexes its ID
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a project document by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a project document, guarded by an optimistic
	// version check. Returns an Aborted error on concurrent modification.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List retrieves all project documents, up to a fixed fetch limit
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
