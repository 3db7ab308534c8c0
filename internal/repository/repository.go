package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/devops-pm/project-manager/internal/models"
)

// Client is the subset of the DynamoDB API the repositories issue.
// It is injected rather than constructed here so tests can substitute
// a fake store without process-wide mocking.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type ProjectRepository interface {
	// Get returns the project with the given id, or nil if absent.
	// An absent project is not an error.
	Get(ctx context.Context, id string) (*models.Project, error)

	// ListByAdminID returns every project owned by the given admin.
	// The underlying table is not indexed on adminId, so this is a
	// full-table predicate scan; the result is unordered and an empty
	// slice is a valid outcome.
	ListByAdminID(ctx context.Context, adminID string) ([]models.Project, error)

	// Create writes the full record. The write is an unconditional
	// upsert by id: a colliding id silently overwrites.
	Create(ctx context.Context, project *models.Project) error

	// Update replaces the full record by id, with no existence
	// precondition.
	Update(ctx context.Context, project *models.Project) error

	// Delete removes the record by id. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error
}

// TaskRepository mirrors ProjectRepository for tasks, listing by the
// owning project instead of the admin.
type TaskRepository interface {
	Get(ctx context.Context, id string) (*models.Task, error)
	ListByProjectID(ctx context.Context, projectID string) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}
