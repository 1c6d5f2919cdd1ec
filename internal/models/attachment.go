package models

import (
	"fmt"
	"strings"
)

// Attachment is one attachment record from an archive's metadata files.
// Field names follow the JSON emitted by the archive export.
type Attachment struct {
	Type             string `json:"type"`
	URL              string `json:"url"`
	PullRequest      string `json:"pull_request,omitempty"`
	Issue            string `json:"issue,omitempty"`
	IssueComment     string `json:"issue_comment,omitempty"`
	User             string `json:"user"`
	AssetName        string `json:"asset_name"`
	AssetContentType string `json:"asset_content_type"`
	AssetURL         string `json:"asset_url"`
	CreatedAt        string `json:"created_at"`
}

// Parent returns the identifier of the pull request, issue, or issue comment
// the attachment belongs to. At most one of the three is populated; when none
// is, ok is false and the attachment cannot be labelled. Should more than one
// be set, pull request wins over issue, which wins over issue comment.
func (a Attachment) Parent() (string, bool) {
	switch {
	case a.PullRequest != "":
		return a.PullRequest, true
	case a.Issue != "":
		return a.Issue, true
	case a.IssueComment != "":
		return a.IssueComment, true
	default:
		return "", false
	}
}

// Validate checks the fields the audit pipeline depends on.
func (a Attachment) Validate() error {
	if strings.TrimSpace(a.AssetName) == "" {
		return fmt.Errorf("attachment asset_name is required")
	}
	if strings.TrimSpace(a.AssetURL) == "" {
		return fmt.Errorf("attachment asset_url is required")
	}
	return nil
}
