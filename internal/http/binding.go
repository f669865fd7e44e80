package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BuildQuery binds the URL query of c into a new T.
func BuildQuery[T any](c *gin.Context) (*T, error) {
	return bindInto[T](c, binding.Query)
}

// BuildForm binds an url-encoded or multipart form body into a new T.
func BuildForm[T any](c *gin.Context) (*T, error) {
	b := binding.Form
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		b = binding.FormMultipart
	}
	return bindInto[T](c, b)
}

func bindInto[T any](c *gin.Context, b binding.Binding) (*T, error) {
	req := new(T)
	if err := c.ShouldBindWith(req, b); err != nil {
		return nil, err
	}
	return req, nil
}
