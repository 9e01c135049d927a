package ops

import (
	"encoding/base64"
	"strings"

	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/Fuabioo/ghmcp/internal/github"
)

// Upstream payloads. Only the fields ghmcp forwards are declared; nullable
// GitHub fields are pointers so null survives as null.

type wireAccount struct {
	Login string `json:"login"`
}

type wireUser struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	CreatedAt   string  `json:"created_at"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
}

type wireRepo struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     *string  `json:"description"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Private         bool     `json:"private"`
	DefaultBranch   string   `json:"default_branch"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	Topics          []string `json:"topics"`
	License         *struct {
		Name string `json:"name"`
	} `json:"license"`
	HTMLURL string `json:"html_url"`
}

type wireIssue struct {
	Number int          `json:"number"`
	Title  string       `json:"title"`
	State  string       `json:"state"`
	User   *wireAccount `json:"user"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	CreatedAt string `json:"created_at"`
	Comments  int    `json:"comments"`
	HTMLURL   string `json:"html_url"`

	// Set when the issue is really a pull request.
	PullRequest *struct{} `json:"pull_request"`
}

type wireRef struct {
	Ref string `json:"ref"`
}

type wirePull struct {
	Number    int          `json:"number"`
	Title     string       `json:"title"`
	State     string       `json:"state"`
	User      *wireAccount `json:"user"`
	Head      wireRef      `json:"head"`
	Base      wireRef      `json:"base"`
	CreatedAt string       `json:"created_at"`
	HTMLURL   string       `json:"html_url"`
}

type wireCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  *struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	HTMLURL string `json:"html_url"`
}

type wireContent struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Size    int     `json:"size"`
	Path     string  `json:"path"`
	Content  *string `json:"content"`
	Encoding string  `json:"encoding"`
}

type wireSearch struct {
	TotalCount int        `json:"total_count"`
	Items      []wireRepo `json:"items"`
}

// Reshaped payloads returned to clients.

// User is the reshaped get_user payload.
type User struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"publicRepos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	CreatedAt   string  `json:"createdAt"`
	AvatarURL   string  `json:"avatarUrl"`
	ProfileURL  string  `json:"profileUrl"`
}

// RepoSummary is one list_repos entry.
type RepoSummary struct {
	Name        string  `json:"name"`
	FullName    string  `json:"fullName"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	IsPrivate   bool    `json:"isPrivate"`
	UpdatedAt   string  `json:"updatedAt"`
	URL         string  `json:"url"`
}

// Repo is the reshaped get_repo payload.
type Repo struct {
	FullName      string   `json:"fullName"`
	Description   *string  `json:"description"`
	Language      *string  `json:"language"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	OpenIssues    int      `json:"openIssues"`
	IsPrivate     bool     `json:"isPrivate"`
	DefaultBranch string   `json:"defaultBranch"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	Topics        []string `json:"topics"`
	License       *string  `json:"license"`
	URL           string   `json:"url"`
}

// Issue is one list_issues entry.
type Issue struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	Author    string   `json:"author"`
	Labels    []string `json:"labels"`
	CreatedAt string   `json:"createdAt"`
	Comments  int      `json:"comments"`
	URL       string   `json:"url"`
}

// PullRequest is one list_pull_requests entry.
type PullRequest struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	State      string `json:"state"`
	Author     string `json:"author"`
	Branch     string `json:"branch"`
	BaseBranch string `json:"baseBranch"`
	CreatedAt  string `json:"createdAt"`
	URL        string `json:"url"`
}

// FileContent is the get_file_contents payload for a file.
type FileContent struct {
	Path    string `json:"path"`
	Size    int    `json:"size"`
	Content string `json:"content"`
}

// DirEntry is one get_file_contents entry for a directory.
type DirEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int    `json:"size"`
	Path string `json:"path"`
}

// SearchHit is one search_repos result.
type SearchHit struct {
	FullName    string  `json:"fullName"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stars"`
	URL         string  `json:"url"`
}

// SearchResult is the reshaped search_repos payload.
type SearchResult struct {
	TotalCount int         `json:"totalCount"`
	Repos      []SearchHit `json:"repos"`
}

// Commit is one list_commits entry.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

const shortSHALength = 7

// decode unmarshals a response into T, tagging failures with the tool name.
func decode[T any](tool string, resp *github.Response) (T, error) {
	var v T
	if err := resp.Decode(&v); err != nil {
		return v, errors.ReshapeFailed(tool, err)
	}
	return v, nil
}

func login(account *wireAccount) string {
	if account == nil {
		return ""
	}
	return account.Login
}

func reshapeUser(resp *github.Response) (any, error) {
	u, err := decode[wireUser]("get_user", resp)
	if err != nil {
		return nil, err
	}
	return User{
		Login:       u.Login,
		Name:        u.Name,
		Bio:         u.Bio,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
		CreatedAt:   u.CreatedAt,
		AvatarURL:   u.AvatarURL,
		ProfileURL:  u.HTMLURL,
	}, nil
}

func reshapeRepoList(resp *github.Response) (any, error) {
	repos, err := decode[[]wireRepo]("list_repos", resp)
	if err != nil {
		return nil, err
	}
	out := make([]RepoSummary, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepoSummary{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			IsPrivate:   r.Private,
			UpdatedAt:   r.UpdatedAt,
			URL:         r.HTMLURL,
		})
	}
	return out, nil
}

func reshapeRepo(resp *github.Response) (any, error) {
	r, err := decode[wireRepo]("get_repo", resp)
	if err != nil {
		return nil, err
	}
	var license *string
	if r.License != nil {
		license = &r.License.Name
	}
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return Repo{
		FullName:      r.FullName,
		Description:   r.Description,
		Language:      r.Language,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		OpenIssues:    r.OpenIssuesCount,
		IsPrivate:     r.Private,
		DefaultBranch: r.DefaultBranch,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Topics:        topics,
		License:       license,
		URL:           r.HTMLURL,
	}, nil
}

// withoutPullRequests drops the pull requests GitHub mixes into issue lists.
func withoutPullRequests(issues []wireIssue) []wireIssue {
	out := make([]wireIssue, 0, len(issues))
	for _, i := range issues {
		if i.PullRequest == nil {
			out = append(out, i)
		}
	}
	return out
}

func reshapeIssues(resp *github.Response) (any, error) {
	issues, err := decode[[]wireIssue]("list_issues", resp)
	if err != nil {
		return nil, err
	}
	issues = withoutPullRequests(issues)

	out := make([]Issue, 0, len(issues))
	for _, i := range issues {
		labels := make([]string, 0, len(i.Labels))
		for _, l := range i.Labels {
			labels = append(labels, l.Name)
		}
		out = append(out, Issue{
			Number:    i.Number,
			Title:     i.Title,
			State:     i.State,
			Author:    login(i.User),
			Labels:    labels,
			CreatedAt: i.CreatedAt,
			Comments:  i.Comments,
			URL:       i.HTMLURL,
		})
	}
	return out, nil
}

func reshapePulls(resp *github.Response) (any, error) {
	pulls, err := decode[[]wirePull]("list_pull_requests", resp)
	if err != nil {
		return nil, err
	}
	out := make([]PullRequest, 0, len(pulls))
	for _, p := range pulls {
		out = append(out, PullRequest{
			Number:     p.Number,
			Title:      p.Title,
			State:      p.State,
			Author:     login(p.User),
			Branch:     p.Head.Ref,
			BaseBranch: p.Base.Ref,
			CreatedAt:  p.CreatedAt,
			URL:        p.HTMLURL,
		})
	}
	return out, nil
}

// reshapeContents handles both shapes of the contents endpoint: a file
// object carrying base64 content, or a directory listing array. Anything
// else (symlinks, submodules, files too large to inline) is reported as
// unreadable.
func reshapeContents(resp *github.Response) (any, error) {
	switch value := resp.Value.(type) {
	case []any:
		entries, err := decode[[]wireContent]("get_file_contents", resp)
		if err != nil {
			return nil, err
		}
		out := make([]DirEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, DirEntry{Name: e.Name, Type: e.Type, Size: e.Size, Path: e.Path})
		}
		return out, nil

	case map[string]any:
		if _, ok := value["content"].(string); !ok {
			break
		}
		file, err := decode[wireContent]("get_file_contents", resp)
		if err != nil {
			return nil, err
		}
		// Files over 1 MB come back with encoding "none" and no content.
		if file.Encoding == "none" || (*file.Content == "" && file.Size > 0) {
			break
		}
		content, err := decodeBase64(*file.Content)
		if err != nil {
			return nil, errors.ReshapeFailed("get_file_contents", err)
		}
		return FileContent{Path: file.Path, Size: file.Size, Content: content}, nil
	}

	return nil, errors.New(errors.CodeReshapeFailed, "Could not read file")
}

// decodeBase64 decodes GitHub's content encoding, which wraps lines.
func decodeBase64(encoded string) (string, error) {
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func reshapeSearch(resp *github.Response) (any, error) {
	result, err := decode[wireSearch]("search_repos", resp)
	if err != nil {
		return nil, err
	}
	hits := make([]SearchHit, 0, len(result.Items))
	for _, r := range result.Items {
		hits = append(hits, SearchHit{
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			URL:         r.HTMLURL,
		})
	}
	return SearchResult{TotalCount: result.TotalCount, Repos: hits}, nil
}

func shortSHA(sha string) string {
	if len(sha) > shortSHALength {
		return sha[:shortSHALength]
	}
	return sha
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return line
}

func reshapeCommits(resp *github.Response) (any, error) {
	commits, err := decode[[]wireCommit]("list_commits", resp)
	if err != nil {
		return nil, err
	}
	out := make([]Commit, 0, len(commits))
	for _, c := range commits {
		commit := Commit{
			SHA:     shortSHA(c.SHA),
			Message: firstLine(c.Commit.Message),
			URL:     c.HTMLURL,
		}
		if c.Commit.Author != nil {
			commit.Author = c.Commit.Author.Name
			commit.Date = c.Commit.Author.Date
		}
		out = append(out, commit)
	}
	return out, nil
}
