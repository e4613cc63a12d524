package infra

import (
	"os"

	"github.com/unrolled/render"
)

type Render = *render.Render

// NewRender creates the JSON renderer used by all controllers.
func NewRender() Render {
	opts := render.Options{
		IndentJSON: func() bool {
			return os.Getenv("GO_ENV") == "development"
		}(),
	}
	r := render.New(opts)
	return r
}
