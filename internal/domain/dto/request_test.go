package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutContentRequest_ProjectLink(t *testing.T) {
	tests := []struct {
		name     string
		request  PutContentRequest
		expected string
	}{
		{
			name:     "github link",
			request:  PutContentRequest{GithubLink: "https://github.com/a/b"},
			expected: "https://github.com/a/b",
		},
		{
			name:     "link alias",
			request:  PutContentRequest{Link: "https://example.com"},
			expected: "https://example.com",
		},
		{
			name:     "github link wins",
			request:  PutContentRequest{GithubLink: "https://github.com/a/b", Link: "https://example.com"},
			expected: "https://github.com/a/b",
		},
		{
			name:     "neither",
			request:  PutContentRequest{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.ProjectLink())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "type_exp: is required", RequiredField("type_exp").Error())
	assert.Equal(t, "language: must be one of en, pl", NewValidationError("language", "must be one of %s", "en, pl").Error())
}
