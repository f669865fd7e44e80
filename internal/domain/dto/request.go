// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// Requests arrive as query strings or url-encoded forms and are bound with
// gin's form binding. Kind specific validation happens in the service layer.
package dto

import (
	"fmt"
)

// ContentQuery selects one entity by kind and id.
//
// @Description Query selecting a single content entity
type ContentQuery struct {
	// Content is the entity kind, e.g. SoftSkill or experience.
	Content string `form:"content" binding:"required" example:"Experience"`
	// ID is the entity id.
	ID *int64 `form:"id" binding:"required" example:"1"`
} // @name ContentQuery

// PutContentRequest is the form used to create or overwrite an entity.
//
// Only the fields relevant to Content are read.
//
// @Description Upsert form for a content entity
type PutContentRequest struct {
	Content             string `form:"content" binding:"required" example:"Experience"`
	ID                  *int64 `form:"id" binding:"required" example:"1"`
	TypeSoft            string `form:"type_soft" example:"aboutme"`
	SubtechnologiesUsed string `form:"subtechnologies_used" example:"Go, gin, PostgreSQL"`
	ImagePath           string `form:"image_path" example:"static/img/portfolio.png"`
	GithubLink          string `form:"github_link" example:"https://github.com/example/portfolio"`
	Link                string `form:"link"`
	TechnologyName      string `form:"technology_name" example:"Go"`
	SubtechnologyName   string `form:"subtechnology_name" example:"gin"`
	TypeExp             string `form:"type_exp" example:"work"`
	Location            string `form:"location" example:"Katowice"`
	StartingDate        string `form:"starting_date" example:"01-2020"`
	EndingDate          string `form:"ending_date" example:"01-2022"`
} // @name PutContentRequest

// ProjectLink returns github_link, or link when github_link is empty.
func (r *PutContentRequest) ProjectLink() string {
	if r.GithubLink != "" {
		return r.GithubLink
	}
	return r.Link
}

// PutTextRequest is the form used to create or overwrite a Translation.
//
// @Description Upsert form for a translation
type PutTextRequest struct {
	ID         *int64 `form:"id" binding:"required" example:"10"`
	ObjectID   *int64 `form:"object_id" binding:"required" example:"1"`
	ObjectType string `form:"object_type" binding:"required" example:"experience"`
	Language   string `form:"language" binding:"required" example:"pl"`
	Title      string `form:"title" example:"Programista Go"`
	Text       string `form:"text" example:"Rozwój usług REST"`
} // @name PutTextRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// RequiredField reports a missing form field.
func RequiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}
