package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/devops-pm/project-manager/internal/models"
)

type projectRepositoryImpl struct {
	logger    zerolog.Logger
	client    Client
	tableName string
}

func NewProjectRepository(
	logger zerolog.Logger,
	client Client,
	tableName string,
) ProjectRepository {
	return &projectRepositoryImpl{
		logger:    logger,
		client:    client,
		tableName: tableName,
	}
}

func (r *projectRepositoryImpl) Get(ctx context.Context, id string) (*models.Project, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", id).
			Msg("failed to get project")
		return nil, err
	}

	if len(out.Item) == 0 {
		r.logger.Debug().
			Str("project_id", id).
			Msg("project not found")
		return nil, nil
	}

	project := new(models.Project)
	err = attributevalue.UnmarshalMap(out.Item, project)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", id).
			Msg("failed to unmarshal project")
		return nil, err
	}

	return project, nil
}

func (r *projectRepositoryImpl) ListByAdminID(ctx context.Context, adminID string) ([]models.Project, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#adminId = :adminId"),
		ExpressionAttributeNames: map[string]string{
			"#adminId": "adminId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":adminId": &types.AttributeValueMemberS{Value: adminID},
		},
	}

	projects := make([]models.Project, 0)
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("admin_id", adminID).
				Msg("failed to scan projects")
			return nil, err
		}

		var page []models.Project
		err = attributevalue.UnmarshalListOfMaps(out.Items, &page)
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("admin_id", adminID).
				Msg("failed to unmarshal projects")
			return nil, err
		}
		projects = append(projects, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	r.logger.Debug().
		Int("count", len(projects)).
		Str("admin_id", adminID).
		Msg("scanned projects by admin id")
	return projects, nil
}

func (r *projectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	item, err := attributevalue.MarshalMap(project)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", project.ID).
			Msg("failed to marshal project")
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", project.ID).
			Msg("failed to put project")
		return err
	}

	r.logger.Debug().
		Str("project_id", project.ID).
		Msg("created project")
	return nil
}

func (r *projectRepositoryImpl) Update(ctx context.Context, project *models.Project) error {
	item, err := attributevalue.MarshalMap(project)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", project.ID).
			Msg("failed to marshal project")
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", project.ID).
			Msg("failed to put project")
		return err
	}

	r.logger.Debug().
		Str("project_id", project.ID).
		Msg("updated project")
	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("project_id", id).
			Msg("failed to delete project")
		return err
	}

	r.logger.Debug().
		Str("project_id", id).
		Msg("deleted project")
	return nil
}
