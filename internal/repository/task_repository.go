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

type taskRepositoryImpl struct {
	logger    zerolog.Logger
	client    Client
	tableName string
}

func NewTaskRepository(
	logger zerolog.Logger,
	client Client,
	tableName string,
) TaskRepository {
	return &taskRepositoryImpl{
		logger:    logger,
		client:    client,
		tableName: tableName,
	}
}

func (r *taskRepositoryImpl) Get(ctx context.Context, id string) (*models.Task, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to get task")
		return nil, err
	}

	if len(out.Item) == 0 {
		r.logger.Debug().
			Str("task_id", id).
			Msg("task not found")
		return nil, nil
	}

	task := new(models.Task)
	err = attributevalue.UnmarshalMap(out.Item, task)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to unmarshal task")
		return nil, err
	}

	return task, nil
}

func (r *taskRepositoryImpl) ListByProjectID(ctx context.Context, projectID string) ([]models.Task, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#projectId = :projectId"),
		ExpressionAttributeNames: map[string]string{
			"#projectId": "projectId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":projectId": &types.AttributeValueMemberS{Value: projectID},
		},
	}

	tasks := make([]models.Task, 0)
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("project_id", projectID).
				Msg("failed to scan tasks")
			return nil, err
		}

		var page []models.Task
		err = attributevalue.UnmarshalListOfMaps(out.Items, &page)
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("project_id", projectID).
				Msg("failed to unmarshal tasks")
			return nil, err
		}
		tasks = append(tasks, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	r.logger.Debug().
		Int("count", len(tasks)).
		Str("project_id", projectID).
		Msg("scanned tasks by project id")
	return tasks, nil
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	item, err := attributevalue.MarshalMap(task)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to marshal task")
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to put task")
		return err
	}

	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("created task")
	return nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	item, err := attributevalue.MarshalMap(task)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to marshal task")
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to put task")
		return err
	}

	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("updated task")
	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}

	r.logger.Debug().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}
