package function

import (
	"net/http"
	"strings"
)

const preflightMaxAge = "86400"

func JSONHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// Preflight answers a CORS capability check without touching business logic.
func Preflight(methods ...string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": strings.Join(methods, ", "),
			"Access-Control-Allow-Headers": "Content-Type",
			"Access-Control-Max-Age":       preflightMaxAge,
		},
		Body: "",
	}
}
