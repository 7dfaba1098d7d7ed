// Package lambda adapts the issue service to the AWS Lambda invocation contract.
//
// The event payload is {"owner", "repo", "issue_number"} and a successful
// invocation returns {"etag", "issue"}. Failures are returned to the runtime
// unchanged; the runtime reports them as errorMessage and errorType.
package lambda

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// RuntimeAPIEnv is set by the Lambda execution environment.
const RuntimeAPIEnv = "AWS_LAMBDA_RUNTIME_API"

// IsLambda reports whether the process was started by the Lambda runtime.
func IsLambda() bool {
	return os.Getenv(RuntimeAPIEnv) != ""
}

// Handler serves issue fetch invocations.
type Handler struct {
	issues driving.IssueService
	newID  func() string
}

// NewHandler creates a Handler backed by the given issue service.
func NewHandler(issues driving.IssueService) *Handler {
	return &Handler{
		issues: issues,
		newID:  uuid.NewString,
	}
}

// Handle processes a single invocation.
// Every log line written during the call carries the invocation's request ID.
func (h *Handler) Handle(ctx context.Context, req domain.IssueRequest) (*domain.IssueResponse, error) {
	ctx = logger.WithRequestID(ctx, h.requestID(ctx))
	return h.issues.Fetch(ctx, req)
}

// Invoke runs a raw JSON payload through the same decoding the runtime uses
// and returns the JSON response.
func (h *Handler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	return lambda.NewHandler(h.Handle).Invoke(ctx, payload)
}

// requestID prefers the runtime's request ID and falls back to a random UUID
// when running outside Lambda.
func (h *Handler) requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return h.newID()
}

// Start runs the Lambda runtime loop. It does not return.
func Start(ctx context.Context, h *Handler) {
	logger.Info("lambda runtime starting",
		"function", lambdacontext.FunctionName,
		"version", lambdacontext.FunctionVersion,
	)
	lambda.StartWithOptions(h.Handle,
		lambda.WithContext(ctx),
		lambda.WithEnableSIGTERM(func() {
			logger.Info("lambda runtime shutting down")
		}),
	)
}
