package function

import (
	"context"
	"net/http"
	"runtime"

	"zidesign/pkg/logger"
)

// Recover turns a panic inside next into a well-formed 500 envelope.
func Recover(log *logger.Logger, next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, req Request) (resp Response) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				if log != nil {
					log.Error("panic recovered: %v\n%s", rec, stack)
				}
				resp = Response{
					StatusCode: http.StatusInternalServerError,
					Headers:    JSONHeaders(),
					Body:       internalErrorBody,
				}
			}
		}()
		return next.Handle(ctx, req)
	})
}
