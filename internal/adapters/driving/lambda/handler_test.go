package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// mockIssueService is a mock implementation of driving.IssueService
// that logs through the context logger like the real service.
type mockIssueService struct {
	resp  *domain.IssueResponse
	err   error
	calls []domain.IssueRequest
}

var _ driving.IssueService = (*mockIssueService)(nil)

func (m *mockIssueService) Fetch(ctx context.Context, req domain.IssueRequest) (*domain.IssueResponse, error) {
	logger.FromContext(ctx).Info("event payload", "owner", req.Owner)
	m.calls = append(m.calls, req)
	return m.resp, m.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func foundABug() *domain.IssueResponse {
	return &domain.IssueResponse{
		ETag:  `"abc123"`,
		Issue: &domain.Issue{Number: 1, Title: "Found a bug", State: "open"},
	}
}

func TestIsLambda(t *testing.T) {
	t.Setenv(RuntimeAPIEnv, "")
	assert.False(t, IsLambda())

	t.Setenv(RuntimeAPIEnv, "127.0.0.1:9001")
	assert.True(t, IsLambda())
}

func TestHandler_Handle(t *testing.T) {
	t.Run("returns service response", func(t *testing.T) {
		captureLogs(t)
		issues := &mockIssueService{resp: foundABug()}
		req := domain.IssueRequest{Owner: "octocat", Repo: "Hello-World", IssueNumber: 1}

		resp, err := NewHandler(issues).Handle(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, foundABug(), resp)
		assert.Equal(t, []domain.IssueRequest{req}, issues.calls)
	})

	t.Run("tags logs with lambda request id", func(t *testing.T) {
		buf := captureLogs(t)
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
			AwsRequestID: "c6af9ac6-7b61-11e6-9a41-93e8deadbeef",
		})

		_, err := NewHandler(&mockIssueService{resp: foundABug()}).Handle(ctx, domain.IssueRequest{Owner: "octocat"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"request_id":"c6af9ac6-7b61-11e6-9a41-93e8deadbeef"`)
	})

	t.Run("generates request id outside lambda", func(t *testing.T) {
		buf := captureLogs(t)
		h := NewHandler(&mockIssueService{resp: foundABug()})
		h.newID = func() string { return "local-1" }

		_, err := h.Handle(context.Background(), domain.IssueRequest{Owner: "octocat"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"request_id":"local-1"`)
	})

	t.Run("returns service error unchanged", func(t *testing.T) {
		captureLogs(t)
		want := domain.NewStatusError(404, "Not Found", nil)

		resp, err := NewHandler(&mockIssueService{err: want}).Handle(context.Background(), domain.IssueRequest{})

		assert.Nil(t, resp)
		assert.Same(t, want, err)
	})
}

func TestHandler_Invoke(t *testing.T) {
	t.Run("decodes payload and encodes response", func(t *testing.T) {
		captureLogs(t)
		issues := &mockIssueService{resp: foundABug()}
		payload := []byte(`{"owner":"octocat","repo":"Hello-World","issue_number":1}`)

		out, err := NewHandler(issues).Invoke(context.Background(), payload)

		require.NoError(t, err)
		require.Len(t, issues.calls, 1)
		assert.Equal(t, domain.IssueRequest{Owner: "octocat", Repo: "Hello-World", IssueNumber: 1}, issues.calls[0])

		var got map[string]any
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, `"abc123"`, got["etag"])
		issue, ok := got["issue"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Found a bug", issue["title"])
		assert.Equal(t, float64(1), issue["number"])
	})

	t.Run("malformed payload fails before fetching", func(t *testing.T) {
		captureLogs(t)
		issues := &mockIssueService{resp: foundABug()}

		_, err := NewHandler(issues).Invoke(context.Background(), []byte(`{"owner":`))

		assert.Error(t, err)
		assert.Empty(t, issues.calls)
	})

	t.Run("negative issue number fails before fetching", func(t *testing.T) {
		captureLogs(t)
		issues := &mockIssueService{resp: foundABug()}

		_, err := NewHandler(issues).Invoke(context.Background(), []byte(`{"owner":"o","repo":"r","issue_number":-1}`))

		assert.Error(t, err)
		assert.Empty(t, issues.calls)
	})

	t.Run("fetch failure message reaches caller", func(t *testing.T) {
		captureLogs(t)
		issues := &mockIssueService{err: domain.NewFetchError(domain.KindMissingETag, nil)}

		_, err := NewHandler(issues).Invoke(context.Background(), []byte(`{"owner":"o","repo":"r","issue_number":1}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ETag header is missing in the response")
	})
}
