package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driven"
)

const helloWorldIssue = `{
	"id": 1,
	"node_id": "MDU6SXNzdWUx",
	"number": 1,
	"title": "Found a bug",
	"body": "I'm having a problem with this.",
	"state": "open",
	"locked": false,
	"user": {"login": "octocat", "id": 1, "type": "User", "site_admin": false},
	"labels": [{"id": 208045946, "name": "bug", "color": "f29513", "default": true}],
	"assignees": [{"login": "octocat", "id": 1}],
	"milestone": {"id": 1002604, "number": 1, "title": "v1.0", "state": "open", "open_issues": 4},
	"comments": 0,
	"created_at": "2011-04-22T13:33:48Z",
	"updated_at": "2011-04-22T13:33:48Z",
	"closed_at": null,
	"author_association": "COLLABORATOR",
	"url": "https://api.github.com/repos/octocat/Hello-World/issues/1",
	"repository_url": "https://api.github.com/repos/octocat/Hello-World",
	"labels_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/labels{/name}",
	"comments_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/comments",
	"events_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/events",
	"html_url": "https://github.com/octocat/Hello-World/issues/1",
	"reactions": {"total_count": 3, "+1": 2, "heart": 1}
}`

// detailedIssue carries fields the typed view does not model, explicit
// nulls and nested objects in full.
const detailedIssue = `{
	"id": 1,
	"node_id": "MDU6SXNzdWUx",
	"url": "https://api.github.com/repos/octocat/Hello-World/issues/1",
	"repository_url": "https://api.github.com/repos/octocat/Hello-World",
	"labels_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/labels{/name}",
	"comments_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/comments",
	"events_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/events",
	"html_url": "https://github.com/octocat/Hello-World/issues/1",
	"timeline_url": "https://api.github.com/repos/octocat/Hello-World/issues/1/timeline",
	"number": 1,
	"state": "open",
	"state_reason": null,
	"title": "Found a bug",
	"body": null,
	"user": {
		"login": "octocat",
		"id": 1,
		"node_id": "MDQ6VXNlcjE=",
		"gravatar_id": "",
		"followers_url": "https://api.github.com/users/octocat/followers",
		"type": "User",
		"site_admin": false
	},
	"labels": [],
	"assignee": null,
	"assignees": [],
	"milestone": {
		"url": "https://api.github.com/repos/octocat/Hello-World/milestones/1",
		"id": 1,
		"number": 1,
		"title": "v1.0",
		"created_at": "2011-04-10T20:09:31Z"
	},
	"locked": false,
	"active_lock_reason": null,
	"comments": 0,
	"pull_request": null,
	"closed_at": null,
	"closed_by": null,
	"created_at": "2011-04-22T13:33:48Z",
	"updated_at": "2011-04-22T13:33:48Z",
	"author_association": "COLLABORATOR"
}`

// newTestClient starts a stub API and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.Client(), Config{BaseURL: srv.URL + "/", UserAgent: "Issue Fetcher"})
	require.NoError(t, err)
	return client
}

func issueHandler(status int, etag, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if etag != "" {
			w.Header().Set("ETag", etag)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClient(t *testing.T) {
	t.Run("implements IssueSource interface", func(t *testing.T) {
		client, err := NewClient(nil, DefaultConfig())
		require.NoError(t, err)
		var _ driven.IssueSource = client
	})

	t.Run("applies base url and user agent", func(t *testing.T) {
		client, err := NewClient(nil, Config{BaseURL: "https://ghe.example.com/api/v3", UserAgent: "Custom"})

		require.NoError(t, err)
		assert.Equal(t, "https://ghe.example.com/api/v3/", client.GitHub().BaseURL.String())
		assert.Equal(t, "Custom", client.GitHub().UserAgent)
	})

	t.Run("rejects relative base url", func(t *testing.T) {
		client, err := NewClient(nil, Config{BaseURL: "/api/", UserAgent: "x"})

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_GetIssue_Success(t *testing.T) {
	var gotReq *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		issueHandler(http.StatusOK, `"abc123"`, helloWorldIssue)(w, r)
	})

	resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, `"abc123"`, resp.ETag)
	require.NotNil(t, resp.Issue)
	assert.Equal(t, 1, resp.Issue.Number)
	assert.Equal(t, "Found a bug", resp.Issue.Title)
	assert.Equal(t, "open", resp.Issue.State)
	require.NotNil(t, resp.Issue.Body)
	assert.Equal(t, "I'm having a problem with this.", *resp.Issue.Body)
	require.NotNil(t, resp.Issue.User)
	assert.Equal(t, "octocat", resp.Issue.User.Login)
	require.Len(t, resp.Issue.Labels, 1)
	assert.Equal(t, "bug", resp.Issue.Labels[0].Name)
	require.NotNil(t, resp.Issue.Milestone)
	assert.Equal(t, "v1.0", resp.Issue.Milestone.Title)
	require.NotNil(t, resp.Issue.Reactions)
	assert.Equal(t, 2, resp.Issue.Reactions.PlusOne)
	assert.Nil(t, resp.Issue.ClosedAt)

	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodGet, gotReq.Method)
	assert.Equal(t, "/repos/octocat/Hello-World/issues/1", gotReq.URL.Path)
	assert.Equal(t, "Issue Fetcher", gotReq.Header.Get("User-Agent"))
	assert.Empty(t, gotReq.Header.Get("Authorization"))
}

func TestClient_GetIssue_IssuePassedThroughUnchanged(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusOK, `"abc123"`, detailedIssue))

	resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)
	require.NoError(t, err)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"etag": "\"abc123\"", "issue": `+detailedIssue+`}`, string(out))
}

func TestClient_GetIssue_WeakETagReturnedVerbatim(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusOK, `W/"abc123"`, helloWorldIssue))

	resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

	require.NoError(t, err)
	assert.Equal(t, `W/"abc123"`, resp.ETag)
}

func TestClient_GetIssue_OneRequestPerCall(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		issueHandler(http.StatusOK, `"abc123"`, helloWorldIssue)(w, r)
	})

	first, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)
	require.NoError(t, err)
	second, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestClient_GetIssue_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		body    string
		message string
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`,
			message: "failed to fetch issue: status 404: Not Found",
		},
		{
			name:    "gone",
			status:  http.StatusGone,
			body:    `{"message":"This issue was deleted"}`,
			message: "failed to fetch issue: status 410: This issue was deleted",
		},
		{
			name:   "rate limited",
			status: http.StatusForbidden,
			headers: map[string]string{
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": "0",
				"X-RateLimit-Reset":     "1700000000",
			},
			body:    `{"message":"API rate limit exceeded for 127.0.0.1."}`,
			message: "failed to fetch issue: status 403",
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			message: "failed to fetch issue: status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.Header().Set("ETag", `"abc123"`)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, domain.ErrFetchFailed)
			assert.Equal(t, domain.KindStatus, domain.KindOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestClient_GetIssue_NotFoundIsDetectable(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusNotFound, "", `{"message":"Not Found"}`))

	_, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 999999)

	assert.True(t, domain.IsNotFound(err))
}

func TestClient_GetIssue_MissingETag(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusOK, "", helloWorldIssue))

	resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrETagMissing)
	assert.Equal(t, "ETag header is missing in the response", err.Error())
}

func TestClient_GetIssue_MissingETagWinsOverBadBody(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusOK, "", `not json`))

	_, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

	assert.Equal(t, domain.KindMissingETag, domain.KindOf(err))
}

func TestClient_GetIssue_StatusWinsOverMissingETag(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusNotFound, "", `{"message":"Not Found"}`))

	_, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

	assert.Equal(t, domain.KindStatus, domain.KindOf(err))
}

func TestClient_GetIssue_DeserializeErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"truncated body", `{"number": 1, "title": "Found a bug"`, "unexpected end of JSON input"},
		{"wrong type", `{"number": "one", "title": "Found a bug"}`, "cannot unmarshal string"},
		{"not an object", `[1, 2, 3]`, "cannot unmarshal array"},
		{"null body", `null`, "response body is null"},
		{"missing title", issueBody(t, nil, "title"), "missing field `title`"},
		{"only number and title", `{"number": 1, "title": "x"}`, "missing field `id`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, issueHandler(http.StatusOK, `"abc123"`, tt.body))

			resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, domain.ErrDeserialize)
			assert.Contains(t, err.Error(), "failed to deserialize issue from response")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestClient_GetIssue_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewClient(nil, Config{BaseURL: srv.URL + "/", UserAgent: "Issue Fetcher"})
	require.NoError(t, err)

	resp, err := client.GetIssue(context.Background(), "octocat", "Hello-World", 1)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestClient_GetIssue_CancelledContext(t *testing.T) {
	client := newTestClient(t, issueHandler(http.StatusOK, `"abc123"`, helloWorldIssue))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetIssue(ctx, "octocat", "Hello-World", 1)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestIssuePath(t *testing.T) {
	assert.Equal(t, "repos/octocat/Hello-World/issues/1347", issuePath("octocat", "Hello-World", 1347))
}
