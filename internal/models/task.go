package models

// Task is scoped to a single project. ProjectID comes from the request
// path, AdminID and CreatedBy from the caller's verified identity, and
// DateTime from the server clock; none of them can be overridden by
// client-supplied body fields.
type Task struct {
	ID          string `json:"id" dynamodbav:"id"`
	ProjectID   string `json:"projectId" dynamodbav:"projectId"`
	AdminID     string `json:"adminId" dynamodbav:"adminId"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	State       string `json:"state" dynamodbav:"state"`
	DateTime    string `json:"dateTime" dynamodbav:"dateTime"`
	CreatedBy   string `json:"createdBy" dynamodbav:"createdBy"`
}
