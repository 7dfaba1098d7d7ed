package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// IssueRequest identifies a single issue to fetch.
// It is the invocation payload delivered by the runtime.
type IssueRequest struct {
	// Owner is the account or organisation that owns the repository.
	Owner string `json:"owner"`

	// Repo is the repository name within Owner.
	Repo string `json:"repo"`

	// IssueNumber is the issue number within Owner/Repo.
	IssueNumber uint64 `json:"issue_number"`
}

// String returns the request in owner/repo#number form.
func (r IssueRequest) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.IssueNumber)
}

// IssueResponse is the result of a successful fetch.
// Both fields are always populated; a response is never built from a partial success.
type IssueResponse struct {
	// ETag is the cache-validation token returned with the issue, verbatim.
	ETag string `json:"etag"`

	// Issue is the deserialized issue body.
	Issue *Issue `json:"issue"`
}

// Issue is a GitHub issue as returned by the REST API.
//
// The typed fields are a read view over the commonly used parts of the
// representation. Raw holds the body exactly as the API sent it; when set,
// the issue marshals to Raw, so fields the view does not model and explicit
// nulls reach the caller unchanged.
type Issue struct {
	Raw json.RawMessage `json:"-"`


	ID                int64        `json:"id,omitempty"`
	NodeID            string       `json:"node_id,omitempty"`
	Number            int          `json:"number"`
	Title             string       `json:"title"`
	Body              *string      `json:"body"`
	State             string       `json:"state"`
	StateReason       string       `json:"state_reason,omitempty"`
	Locked            bool         `json:"locked"`
	ActiveLockReason  string       `json:"active_lock_reason,omitempty"`
	User              *User        `json:"user,omitempty"`
	Labels            []Label      `json:"labels"`
	Assignee          *User        `json:"assignee,omitempty"`
	Assignees         []User       `json:"assignees"`
	Milestone         *Milestone   `json:"milestone,omitempty"`
	Comments          int          `json:"comments"`
	ClosedBy          *User        `json:"closed_by,omitempty"`
	AuthorAssociation string       `json:"author_association,omitempty"`
	CreatedAt         *time.Time   `json:"created_at,omitempty"`
	UpdatedAt         *time.Time   `json:"updated_at,omitempty"`
	ClosedAt          *time.Time   `json:"closed_at,omitempty"`
	URL               string       `json:"url,omitempty"`
	HTMLURL           string       `json:"html_url,omitempty"`
	RepositoryURL     string       `json:"repository_url,omitempty"`
	CommentsURL       string       `json:"comments_url,omitempty"`
	EventsURL         string       `json:"events_url,omitempty"`
	LabelsURL         string       `json:"labels_url,omitempty"`
	PullRequest       *PullRequest `json:"pull_request,omitempty"`
	Reactions         *Reactions   `json:"reactions,omitempty"`
}

// issueView is Issue without its JSON methods.
type issueView Issue

// MarshalJSON returns Raw when present, otherwise the typed fields.
func (i Issue) MarshalJSON() ([]byte, error) {
	if len(i.Raw) > 0 {
		return i.Raw, nil
	}
	return json.Marshal(issueView(i))
}

// UnmarshalJSON fills the typed fields and keeps a copy of data in Raw.
func (i *Issue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v issueView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = Issue(v)
	i.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// String returns the issue as JSON, the form text log lines carry.
func (i Issue) String() string {
	data, err := i.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("issue #%d", i.Number)
	}
	return string(data)
}

// IsPullRequest reports whether the issue is the issue half of a pull request.
func (i *Issue) IsPullRequest() bool {
	return i != nil && i.PullRequest != nil
}

// User is the subset of a GitHub account attached to issues.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Login     string `json:"login"`
	Type      string `json:"type,omitempty"`
	SiteAdmin bool   `json:"site_admin,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Label is an issue label.
type Label struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Milestone groups issues towards a target.
type Milestone struct {
	ID           int64      `json:"id,omitempty"`
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	State        string     `json:"state,omitempty"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
	Creator      *User      `json:"creator,omitempty"`
	DueOn        *time.Time `json:"due_on,omitempty"`
	HTMLURL      string     `json:"html_url,omitempty"`
}

// PullRequest holds the pull request links of an issue that is a pull request.
type PullRequest struct {
	URL      string     `json:"url,omitempty"`
	HTMLURL  string     `json:"html_url,omitempty"`
	DiffURL  string     `json:"diff_url,omitempty"`
	PatchURL string     `json:"patch_url,omitempty"`
	MergedAt *time.Time `json:"merged_at,omitempty"`
}

// Reactions summarises the reactions on an issue.
type Reactions struct {
	TotalCount int `json:"total_count"`
	PlusOne    int `json:"+1"`
	MinusOne   int `json:"-1"`
	Laugh      int `json:"laugh"`
	Confused   int `json:"confused"`
	Heart      int `json:"heart"`
	Hooray     int `json:"hooray"`
	Rocket     int `json:"rocket"`
	Eyes       int `json:"eyes"`
}
