package openaicompat

import "context"

// IClient defines the interface for a text-completion model server.
type IClient interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
