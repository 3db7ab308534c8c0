package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamoClient records every request and answers from optional
// per-method functions, defaulting to empty success responses.
type fakeDynamoClient struct {
	getItemFn    func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItemFn    func(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	deleteItemFn func(input *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	scanFn       func(input *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)

	getInputs    []*dynamodb.GetItemInput
	putInputs    []*dynamodb.PutItemInput
	deleteInputs []*dynamodb.DeleteItemInput
	scanInputs   []*dynamodb.ScanInput
}

func (f *fakeDynamoClient) GetItem(_ context.Context, input *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getInputs = append(f.getInputs, input)
	if f.getItemFn != nil {
		return f.getItemFn(input)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoClient) PutItem(_ context.Context, input *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, input)
	if f.putItemFn != nil {
		return f.putItemFn(input)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) DeleteItem(_ context.Context, input *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteInputs = append(f.deleteInputs, input)
	if f.deleteItemFn != nil {
		return f.deleteItemFn(input)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoClient) Scan(_ context.Context, input *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	// Copy: the repository mutates the input between pages.
	recorded := *input
	f.scanInputs = append(f.scanInputs, &recorded)
	if f.scanFn != nil {
		return f.scanFn(input)
	}
	return &dynamodb.ScanOutput{}, nil
}
