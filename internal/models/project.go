package models

// Project is the parent resource. AdminID is set from the caller's
// verified identity on create and reasserted on every update; it is the
// sole ownership anchor and is never taken from a request body.
type Project struct {
	ID          string `json:"id" dynamodbav:"id"`
	AdminID     string `json:"adminId" dynamodbav:"adminId"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description" dynamodbav:"description"`
}
