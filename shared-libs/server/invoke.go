package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/usersync/user-lifecycle/shared-libs/dto"
	sharederrors "github.com/usersync/user-lifecycle/shared-libs/errors"
)

// Invoke adapts a Lambda-style handler to an HTTP endpoint. The request body is
// decoded as the event, and the chi request id is exposed to the handler as the
// Lambda request id.
func Invoke[E any, R any](logger *slog.Logger, fn func(context.Context, E) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())

		var event E
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			writeError(w, "bad_request", "invalid event payload: "+err.Error(), requestID)
			return
		}

		ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{AwsRequestID: requestID})
		result, err := fn(ctx, event)
		if err != nil {
			logger.Error("local invoke failed", "requestId", requestID, "error", err)
			writeError(w, "internal", err.Error(), requestID)
			return
		}

		writeJSON(w, http.StatusOK, dto.InvokeResponse{RequestID: requestID, Result: result})
	}
}

func writeError(w http.ResponseWriter, code, message, requestID string) {
	writeJSON(w, sharederrors.ToStatusCode(code), sharederrors.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestID,
	})
}
