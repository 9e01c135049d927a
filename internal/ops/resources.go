package ops

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/Fuabioo/ghmcp/internal/github"
)

// Resource URIs
const (
	ProfileURI = "github://user/profile"
	ReposURI   = "github://user/repos"
)

// Resource is a read-only, URI-addressed view over one canned GitHub call.
type Resource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string

	endpoint string
	reshape  func(*github.Response) (any, error)
}

// ProfileSummary is the content of the profile resource.
type ProfileSummary struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	PublicRepos int     `json:"publicRepos"`
	Followers   int     `json:"followers"`
}

// RepoBrief is one entry of the repos resource.
type RepoBrief struct {
	Name     string  `json:"name"`
	Language *string `json:"language"`
	Stars    int     `json:"stars"`
}

var resources = []Resource{
	{
		URI:         ProfileURI,
		Name:        "GitHub Profile",
		Description: "Your GitHub profile",
		MIMEType:    "application/json",
		endpoint:    "/user",
		reshape: func(resp *github.Response) (any, error) {
			u, err := decode[wireUser]("profile resource", resp)
			if err != nil {
				return nil, err
			}
			return ProfileSummary{Login: u.Login, Name: u.Name, PublicRepos: u.PublicRepos, Followers: u.Followers}, nil
		},
	},
	{
		URI:         ReposURI,
		Name:        "Your Repositories",
		Description: "Your recent repos",
		MIMEType:    "application/json",
		endpoint:    "/user/repos?sort=updated&per_page=5&type=owner",
		reshape: func(resp *github.Response) (any, error) {
			repos, err := decode[[]wireRepo]("repos resource", resp)
			if err != nil {
				return nil, err
			}
			out := make([]RepoBrief, 0, len(repos))
			for _, r := range repos {
				out = append(out, RepoBrief{Name: r.Name, Language: r.Language, Stars: r.StargazersCount})
			}
			return out, nil
		},
	},
}

// Resources returns the resource table in advertised order.
func Resources() []Resource {
	return slices.Clone(resources)
}

// ResourceReader serves resource reads. Unlike tool calls, its errors are
// returned to the caller rather than folded into a result.
type ResourceReader struct {
	fetcher github.Fetcher
	logger  *slog.Logger
}

// NewResourceReader creates a ResourceReader that reads GitHub through fetcher.
func NewResourceReader(fetcher github.Fetcher, logger *slog.Logger) *ResourceReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceReader{fetcher: fetcher, logger: logger}
}

// Read fetches and reshapes the resource at uri.
func (r *ResourceReader) Read(ctx context.Context, uri string) (any, error) {
	idx := slices.IndexFunc(resources, func(res Resource) bool { return res.URI == uri })
	if idx < 0 {
		return nil, errors.UnknownResource(uri)
	}
	res := resources[idx]

	r.logger.Debug("reading resource", "uri", uri, "endpoint", res.endpoint)

	resp, err := r.fetcher.FetchJSON(ctx, res.endpoint)
	if err != nil {
		return nil, err
	}

	if message, failed := github.UpstreamError(resp); failed {
		return nil, errors.UpstreamError(message)
	}

	return res.reshape(resp)
}
