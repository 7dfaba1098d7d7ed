package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// decodeIssue parses an issue response body.
// The body must be a JSON object carrying every field in requiredIssueFields.
// The returned issue keeps the body verbatim in Raw.
func decodeIssue(body []byte) (*domain.Issue, error) {
	var issue *gh.Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, domain.NewFetchError(domain.KindDeserialize, err)
	}
	if issue == nil {
		return nil, domain.NewFetchError(domain.KindDeserialize, errors.New("response body is null"))
	}

	for _, f := range requiredIssueFields {
		if !f.present(issue) {
			return nil, domain.NewFetchError(domain.KindDeserialize, fmt.Errorf("missing field `%s`", f.name))
		}
	}

	out := buildIssue(issue)
	out.Raw = append(json.RawMessage(nil), body...)
	return out, nil
}

// requiredIssueFields lists the fields every issue representation carries.
// Absent and null are both rejected. Nullable fields such as body,
// milestone and closed_at are not listed.
var requiredIssueFields = []struct {
	name    string
	present func(*gh.Issue) bool
}{
	{"id", func(i *gh.Issue) bool { return i.ID != nil }},
	{"node_id", func(i *gh.Issue) bool { return i.NodeID != nil }},
	{"url", func(i *gh.Issue) bool { return i.URL != nil }},
	{"repository_url", func(i *gh.Issue) bool { return i.RepositoryURL != nil }},
	{"labels_url", func(i *gh.Issue) bool { return i.LabelsURL != nil }},
	{"comments_url", func(i *gh.Issue) bool { return i.CommentsURL != nil }},
	{"events_url", func(i *gh.Issue) bool { return i.EventsURL != nil }},
	{"html_url", func(i *gh.Issue) bool { return i.HTMLURL != nil }},
	{"number", func(i *gh.Issue) bool { return i.Number != nil }},
	{"state", func(i *gh.Issue) bool { return i.State != nil }},
	{"title", func(i *gh.Issue) bool { return i.Title != nil }},
	{"user", func(i *gh.Issue) bool { return i.User != nil }},
	{"labels", func(i *gh.Issue) bool { return i.Labels != nil }},
	{"assignees", func(i *gh.Issue) bool { return i.Assignees != nil }},
	{"author_association", func(i *gh.Issue) bool { return i.AuthorAssociation != nil }},
	{"locked", func(i *gh.Issue) bool { return i.Locked != nil }},
	{"comments", func(i *gh.Issue) bool { return i.Comments != nil }},
	{"created_at", func(i *gh.Issue) bool { return i.CreatedAt != nil }},
	{"updated_at", func(i *gh.Issue) bool { return i.UpdatedAt != nil }},
}

// buildIssue creates the domain Issue from the go-github representation.
func buildIssue(issue *gh.Issue) *domain.Issue {
	labels := make([]domain.Label, len(issue.Labels))
	for i, l := range issue.Labels {
		labels[i] = domain.Label{
			ID:          l.GetID(),
			Name:        l.GetName(),
			Color:       l.GetColor(),
			Description: l.GetDescription(),
			Default:     l.GetDefault(),
			URL:         l.GetURL(),
		}
	}

	assignees := make([]domain.User, 0, len(issue.Assignees))
	for _, a := range issue.Assignees {
		if a != nil {
			assignees = append(assignees, *buildUser(a))
		}
	}

	out := &domain.Issue{
		ID:                issue.GetID(),
		NodeID:            issue.GetNodeID(),
		Number:            issue.GetNumber(),
		Title:             issue.GetTitle(),
		Body:              issue.Body,
		State:             issue.GetState(),
		StateReason:       issue.GetStateReason(),
		Locked:            issue.GetLocked(),
		ActiveLockReason:  issue.GetActiveLockReason(),
		User:              buildUser(issue.User),
		Labels:            labels,
		Assignee:          buildUser(issue.Assignee),
		Assignees:         assignees,
		Comments:          issue.GetComments(),
		ClosedBy:          buildUser(issue.ClosedBy),
		AuthorAssociation: issue.GetAuthorAssociation(),
		CreatedAt:         timePtr(issue.CreatedAt),
		UpdatedAt:         timePtr(issue.UpdatedAt),
		ClosedAt:          timePtr(issue.ClosedAt),
		URL:               issue.GetURL(),
		HTMLURL:           issue.GetHTMLURL(),
		RepositoryURL:     issue.GetRepositoryURL(),
		CommentsURL:       issue.GetCommentsURL(),
		EventsURL:         issue.GetEventsURL(),
		LabelsURL:         issue.GetLabelsURL(),
	}

	if m := issue.Milestone; m != nil {
		out.Milestone = &domain.Milestone{
			ID:           m.GetID(),
			Number:       m.GetNumber(),
			Title:        m.GetTitle(),
			Description:  m.GetDescription(),
			State:        m.GetState(),
			OpenIssues:   m.GetOpenIssues(),
			ClosedIssues: m.GetClosedIssues(),
			Creator:      buildUser(m.Creator),
			DueOn:        timePtr(m.DueOn),
			HTMLURL:      m.GetHTMLURL(),
		}
	}

	if pr := issue.PullRequestLinks; pr != nil {
		out.PullRequest = &domain.PullRequest{
			URL:      pr.GetURL(),
			HTMLURL:  pr.GetHTMLURL(),
			DiffURL:  pr.GetDiffURL(),
			PatchURL: pr.GetPatchURL(),
			MergedAt: timePtr(pr.MergedAt),
		}
	}

	if r := issue.Reactions; r != nil {
		out.Reactions = &domain.Reactions{
			TotalCount: r.GetTotalCount(),
			PlusOne:    r.GetPlusOne(),
			MinusOne:   r.GetMinusOne(),
			Laugh:      r.GetLaugh(),
			Confused:   r.GetConfused(),
			Heart:      r.GetHeart(),
			Hooray:     r.GetHooray(),
			Rocket:     r.GetRocket(),
			Eyes:       r.GetEyes(),
		}
	}

	return out
}

func buildUser(u *gh.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID:        u.GetID(),
		Login:     u.GetLogin(),
		Type:      u.GetType(),
		SiteAdmin: u.GetSiteAdmin(),
		AvatarURL: u.GetAvatarURL(),
		HTMLURL:   u.GetHTMLURL(),
		URL:       u.GetURL(),
	}
}

func timePtr(ts *gh.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
