// Package function models one HTTP-triggered invocation: the inbound request event,
// the outbound response envelope and the tagged result that operations produce.
package function

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"zidesign/pkg/apperr"
)

// Request is the inbound event of a single invocation.
type Request struct {
	HTTPMethod            string            `json:"httpMethod"`
	Headers               map[string]string `json:"headers,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	Body                  string            `json:"body"`
	IsBase64Encoded       bool              `json:"isBase64Encoded"`
}

// Response is the envelope returned to the caller. Body is always a JSON document,
// except for preflight answers where it is empty.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

type Handler interface {
	Handle(ctx context.Context, req Request) Response
}

type HandlerFunc func(ctx context.Context, req Request) Response

func (f HandlerFunc) Handle(ctx context.Context, req Request) Response {
	return f(ctx, req)
}

func (r Request) Method() string {
	if r.HTTPMethod == "" {
		return "GET"
	}
	return strings.ToUpper(r.HTTPMethod)
}

func (r Request) Query(key string) string {
	if r.QueryStringParameters == nil {
		return ""
	}
	return r.QueryStringParameters[key]
}

// DecodeBody unmarshals the JSON body into v. An absent body decodes as an empty object.
func (r Request) DecodeBody(v interface{}) error {
	raw := r.Body
	if r.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return apperr.Validation("Invalid request body")
		}
		raw = string(decoded)
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}
