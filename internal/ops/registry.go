package ops

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Fuabioo/ghmcp/internal/security"
)

// maxPerPage is the largest page GitHub serves.
const maxPerPage = 100

var stateEnum = []string{"open", "closed", "all"}

func ownerParam() Param {
	return Param{
		Name:        "owner",
		Type:        TypeString,
		Description: "Repo owner (username or org)",
		Required:    true,
		validate:    nameValidator("owner"),
	}
}

func repoParam() Param {
	return Param{
		Name:        "repo",
		Type:        TypeString,
		Description: "Repository name",
		Required:    true,
		validate:    nameValidator("repo"),
	}
}

func stateParam() Param {
	return Param{
		Name:        "state",
		Type:        TypeString,
		Description: "Filter by state (default: open)",
		Enum:        stateEnum,
		Default:     "open",
	}
}

func limitParam(description string, def int) Param {
	return Param{
		Name:        "limit",
		Type:        TypeNumber,
		Description: description,
		Default:     def,
	}
}

func nameValidator(kind string) func(string) error {
	return func(name string) error {
		return security.ValidateName(kind, name)
	}
}

// perPage clamps the resolved limit to what one GitHub page can hold.
func perPage(a Args) int {
	n := a.Int("limit", 1)
	if n < 1 {
		return 1
	}
	if n > maxPerPage {
		return maxPerPage
	}
	return n
}

func repoPath(a Args) string {
	return fmt.Sprintf("/repos/%s/%s", url.PathEscape(a.String("owner", "")), url.PathEscape(a.String("repo", "")))
}

// contentPath escapes each segment of a repository file path, keeping the
// separators.
func contentPath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// operations is the tool table. Order is the advertised order.
var operations = []Operation{
	{
		Name:        "get_user",
		Description: "Get the authenticated GitHub user's profile info",
		endpoint: func(Args) string {
			return "/user"
		},
		reshape: reshapeUser,
	},
	{
		Name:        "list_repos",
		Description: "List repositories for the authenticated user or a specified user",
		Params: []Param{
			{
				Name:        "username",
				Type:        TypeString,
				Description: "GitHub username (leave empty for your own repos)",
				validate:    nameValidator("username"),
			},
			{
				Name:        "sort",
				Type:        TypeString,
				Description: "Sort by (default: updated)",
				Enum:        []string{"updated", "created", "pushed", "full_name"},
				Default:     "updated",
			},
			limitParam("Max repos to return (default: 10)", 10),
		},
		endpoint: func(a Args) string {
			query := fmt.Sprintf("sort=%s&per_page=%d", url.QueryEscape(a.String("sort", "")), perPage(a))
			if username := a.String("username", ""); username != "" {
				return fmt.Sprintf("/users/%s/repos?%s", url.PathEscape(username), query)
			}
			return "/user/repos?" + query + "&type=owner"
		},
		reshape: reshapeRepoList,
	},
	{
		Name:        "get_repo",
		Description: "Get detailed info about a specific repository",
		Params:      []Param{ownerParam(), repoParam()},
		endpoint:    repoPath,
		reshape:     reshapeRepo,
	},
	{
		Name:        "list_issues",
		Description: "List issues for a repository",
		Params: []Param{
			ownerParam(),
			repoParam(),
			stateParam(),
			limitParam("Max issues to return (default: 10)", 10),
		},
		endpoint: func(a Args) string {
			return fmt.Sprintf("%s/issues?state=%s&per_page=%d", repoPath(a), url.QueryEscape(a.String("state", "")), perPage(a))
		},
		reshape: reshapeIssues,
	},
	{
		Name:        "list_pull_requests",
		Description: "List pull requests for a repository",
		Params: []Param{
			ownerParam(),
			repoParam(),
			stateParam(),
			limitParam("Max PRs to return (default: 10)", 10),
		},
		endpoint: func(a Args) string {
			return fmt.Sprintf("%s/pulls?state=%s&per_page=%d", repoPath(a), url.QueryEscape(a.String("state", "")), perPage(a))
		},
		reshape: reshapePulls,
	},
	{
		Name:        "get_file_contents",
		Description: "Get the contents of a file from a repository",
		Params: []Param{
			ownerParam(),
			repoParam(),
			{
				Name:        "path",
				Type:        TypeString,
				Description: "File path (e.g. 'README.md', 'src/index.js')",
				Required:    true,
				validate:    security.ValidateContentPath,
			},
			{
				Name:        "branch",
				Type:        TypeString,
				Description: "Branch name (default: the repository's default branch)",
				validate:    security.ValidateRef,
			},
		},
		endpoint: func(a Args) string {
			endpoint := fmt.Sprintf("%s/contents/%s", repoPath(a), contentPath(a.String("path", "")))
			if branch := a.String("branch", ""); branch != "" {
				endpoint += "?ref=" + url.QueryEscape(branch)
			}
			return endpoint
		},
		reshape: reshapeContents,
	},
	{
		Name:        "search_repos",
		Description: "Search GitHub repositories by keyword",
		Params: []Param{
			{
				Name:        "query",
				Type:        TypeString,
				Description: "Search query",
				Required:    true,
			},
			limitParam("Max results (default: 5)", 5),
		},
		endpoint: func(a Args) string {
			return fmt.Sprintf("/search/repositories?q=%s&per_page=%d", url.QueryEscape(a.String("query", "")), perPage(a))
		},
		reshape: reshapeSearch,
	},
	{
		Name:        "list_commits",
		Description: "List recent commits for a repository",
		Params: []Param{
			ownerParam(),
			repoParam(),
			limitParam("Max commits (default: 10)", 10),
		},
		endpoint: func(a Args) string {
			return fmt.Sprintf("%s/commits?per_page=%d", repoPath(a), perPage(a))
		},
		reshape: reshapeCommits,
	},
}

// Operations returns the tool table in advertised order.
func Operations() []Operation {
	return slices.Clone(operations)
}

// Lookup finds an operation by tool name.
func Lookup(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
