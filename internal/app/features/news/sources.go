// internal/app/features/news/sources.go
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Feed URLs proxied through rss2json.
const (
	techCrunchFeed = "https://feeds.feedburner.com/TechCrunch"
	vergeFeed      = "https://www.theverge.com/rss/index.xml"
)

// Per-source article limits.
const (
	hackerNewsIDs   = 8
	hackerNewsLimit = 4
	devToLimit      = 8
	techCrunchLimit = 6
	githubLimit     = 5
	redditLimit     = 6
	vergeLimit      = 5
)

// Stock images used when a source provides none.
const (
	imageHackerNews = "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=400&h=200&fit=crop"
	imageDevTo      = "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=200&fit=crop"
	imageRSS        = "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=200&fit=crop"
	imageGitHub     = "https://images.unsplash.com/photo-1618477388954-7852f32655ec?w=400&h=200&fit=crop"
	imageReddit     = "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=200&fit=crop"
)

const descriptionLimit = 200

// Sources fetches tech articles from the external feeds. Base URLs are
// fields so tests can point them at local fakes.
type Sources struct {
	Client *http.Client
	Log    *zap.Logger

	HackerNewsBase string
	DevToBase      string
	RSS2JSONBase   string
	GitHubBase     string
	RedditBase     string

	strip *bluemonday.Policy
}

// NewSources builds a source set against the real public endpoints.
func NewSources(client *http.Client, logger *zap.Logger) *Sources {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Sources{
		Client:         client,
		Log:            logger,
		HackerNewsBase: "https://hacker-news.firebaseio.com",
		DevToBase:      "https://dev.to",
		RSS2JSONBase:   "https://api.rss2json.com",
		GitHubBase:     "https://api.github.com",
		RedditBase:     "https://www.reddit.com",
		strip:          bluemonday.StrictPolicy(),
	}
}

// FetchAll fans out to every source concurrently and joins the results.
// One failing source never fails the others; the returned count says how
// many sources produced anything.
func (s *Sources) FetchAll(ctx context.Context) (articles []models.Article, succeeded int) {
	fetchers := []func(context.Context) ([]models.Article, error){
		s.fetchHackerNews,
		s.fetchDevTo,
		s.fetchTechCrunch,
		s.fetchGitHub,
		s.fetchReddit,
		s.fetchVerge,
	}
	names := []string{"hackernews", "devto", "techcrunch", "github", "reddit", "verge"}

	results := make([][]models.Article, len(fetchers))
	var wg sync.WaitGroup
	for i, fetch := range fetchers {
		wg.Add(1)
		go func(i int, fetch func(context.Context) ([]models.Article, error)) {
			defer wg.Done()
			got, err := fetch(ctx)
			if err != nil {
				s.Log.Warn("news source failed",
					zap.String("source", names[i]),
					zap.Error(err),
				)
				return
			}
			results[i] = got
		}(i, fetch)
	}
	wg.Wait()

	for _, r := range results {
		if r != nil {
			succeeded++
			articles = append(articles, r...)
		}
	}
	return articles, succeeded
}

type hnItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
	Score int    `json:"score"`
	By    string `json:"by"`
	Time  int64  `json:"time"`
}

func (s *Sources) fetchHackerNews(ctx context.Context) ([]models.Article, error) {
	var ids []int64
	if err := s.getJSON(ctx, s.HackerNewsBase+"/v0/topstories.json", &ids); err != nil {
		return nil, err
	}
	if len(ids) > hackerNewsIDs {
		ids = ids[:hackerNewsIDs]
	}

	// Item fetches fan out too; a missing item is skipped, not fatal.
	items := make([]*hnItem, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			var item hnItem
			if err := s.getJSON(ctx, fmt.Sprintf("%s/v0/item/%d.json", s.HackerNewsBase, id), &item); err != nil {
				return
			}
			items[i] = &item
		}(i, id)
	}
	wg.Wait()

	articles := make([]models.Article, 0, hackerNewsLimit)
	for _, item := range items {
		if item == nil || item.URL == "" || item.Title == "" {
			continue
		}
		if len(articles) >= hackerNewsLimit {
			break
		}
		desc := s.summarize(item.Text)
		if desc == "" {
			desc = fmt.Sprintf("Popular tech story with %d points on Hacker News", item.Score)
		}
		author := item.By
		if author == "" {
			author = "HN Community"
		}
		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: desc,
			URL:         item.URL,
			ImageURL:    imageHackerNews,
			PublishedAt: time.Unix(item.Time, 0).UTC(),
			Source:      "Hacker News",
			Author:      author,
			Category:    "Tech Discussion",
		})
	}
	return articles, nil
}

type devToArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	CoverImage  string `json:"cover_image"`
	SocialImage string `json:"social_image"`
	PublishedAt string `json:"published_at"`
	User        struct {
		Name string `json:"name"`
	} `json:"user"`
}

func (s *Sources) fetchDevTo(ctx context.Context) ([]models.Article, error) {
	var posts []devToArticle
	u := s.DevToBase + "/api/articles?tag=javascript,react,ai,programming,webdev&top=7&per_page=15"
	if err := s.getJSON(ctx, u, &posts); err != nil {
		return nil, err
	}
	if len(posts) > devToLimit {
		posts = posts[:devToLimit]
	}

	articles := make([]models.Article, 0, len(posts))
	for _, p := range posts {
		image := p.CoverImage
		if image == "" {
			image = p.SocialImage
		}
		if image == "" {
			image = imageDevTo
		}
		desc := p.Description
		if desc == "" {
			desc = s.summarize(p.Title)
		}
		author := p.User.Name
		if author == "" {
			author = "Developer Community"
		}
		articles = append(articles, models.Article{
			Title:       p.Title,
			Description: desc,
			URL:         p.URL,
			ImageURL:    image,
			PublishedAt: parseTime(p.PublishedAt),
			Source:      "Dev.to",
			Author:      author,
			Category:    "Development",
		})
	}
	return articles, nil
}

type rssFeed struct {
	Items []rssItem `json:"items"`
}

type rssItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Thumbnail   string `json:"thumbnail"`
	PubDate     string `json:"pubDate"`
	Author      string `json:"author"`
}

func (s *Sources) fetchTechCrunch(ctx context.Context) ([]models.Article, error) {
	return s.fetchRSS(ctx, techCrunchFeed, techCrunchLimit, "TechCrunch", "TechCrunch Team", "Startup & Business")
}

func (s *Sources) fetchVerge(ctx context.Context) ([]models.Article, error) {
	return s.fetchRSS(ctx, vergeFeed, vergeLimit, "The Verge", "The Verge Team", "Consumer Tech")
}

// fetchRSS pulls an RSS feed through the rss2json proxy.
func (s *Sources) fetchRSS(ctx context.Context, feed string, limit int, source, defaultAuthor, category string) ([]models.Article, error) {
	var parsed rssFeed
	u := s.RSS2JSONBase + "/v1/api.json?rss_url=" + url.QueryEscape(feed)
	if err := s.getJSON(ctx, u, &parsed); err != nil {
		return nil, err
	}
	items := parsed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		desc := s.summarize(item.Description)
		if desc == "" {
			desc = item.Title
		}
		image := item.Thumbnail
		if image == "" {
			image = imageRSS
		}
		author := item.Author
		if author == "" {
			author = defaultAuthor
		}
		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: desc,
			URL:         item.Link,
			ImageURL:    image,
			PublishedAt: parseTime(item.PubDate),
			Source:      source,
			Author:      author,
			Category:    category,
		})
	}
	return articles, nil
}

type githubSearch struct {
	Items []struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		HTMLURL         string `json:"html_url"`
		Language        string `json:"language"`
		StargazersCount int    `json:"stargazers_count"`
		UpdatedAt       string `json:"updated_at"`
		Owner           struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"items"`
}

func (s *Sources) fetchGitHub(ctx context.Context) ([]models.Article, error) {
	var search githubSearch
	u := s.GitHubBase + "/search/repositories?q=stars:%3E500&sort=updated&order=desc&per_page=10"
	if err := s.getJSON(ctx, u, &search); err != nil {
		return nil, err
	}
	items := search.Items
	if len(items) > githubLimit {
		items = items[:githubLimit]
	}

	articles := make([]models.Article, 0, len(items))
	for _, repo := range items {
		language := repo.Language
		if language == "" {
			language = "Multi-language"
		}
		desc := repo.Description
		if desc == "" {
			desc = fmt.Sprintf("Popular %s repository with %d stars", language, repo.StargazersCount)
		}
		articles = append(articles, models.Article{
			Title:       fmt.Sprintf("Trending: %s - %s Project", repo.Name, language),
			Description: desc,
			URL:         repo.HTMLURL,
			ImageURL:    imageGitHub,
			PublishedAt: parseTime(repo.UpdatedAt),
			Source:      "GitHub",
			Author:      repo.Owner.Login,
			Category:    "Open Source",
		})
	}
	return articles, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				SelfText   string  `json:"selftext"`
				Permalink  string  `json:"permalink"`
				Score      int     `json:"score"`
				Author     string  `json:"author"`
				CreatedUTC float64 `json:"created_utc"`
				Stickied   bool    `json:"stickied"`
				PostHint   string  `json:"post_hint"`
				Preview    struct {
					Images []struct {
						Source struct {
							URL string `json:"url"`
						} `json:"source"`
					} `json:"images"`
				} `json:"preview"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (s *Sources) fetchReddit(ctx context.Context) ([]models.Article, error) {
	var listing redditListing
	if err := s.getJSON(ctx, s.RedditBase+"/r/technology/hot.json?limit=12", &listing); err != nil {
		return nil, err
	}

	articles := make([]models.Article, 0, redditLimit)
	for _, child := range listing.Data.Children {
		post := child.Data
		if post.PostHint == "image" || post.Stickied {
			continue
		}
		if len(articles) >= redditLimit {
			break
		}
		desc := s.summarize(post.SelfText)
		if desc == "" {
			desc = fmt.Sprintf("Discussion on r/technology with %d upvotes", post.Score)
		}
		image := imageReddit
		if imgs := post.Preview.Images; len(imgs) > 0 && imgs[0].Source.URL != "" {
			image = strings.ReplaceAll(imgs[0].Source.URL, "&amp;", "&")
		}
		articles = append(articles, models.Article{
			Title:       post.Title,
			Description: desc,
			URL:         "https://reddit.com" + post.Permalink,
			ImageURL:    image,
			PublishedAt: time.Unix(int64(post.CreatedUTC), 0).UTC(),
			Source:      "Reddit r/Technology",
			Author:      "u/" + post.Author,
			Category:    "Community Discussion",
		})
	}
	return articles, nil
}

// getJSON performs a GET and decodes the JSON body into dst.
func (s *Sources) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// summarize strips HTML tags and truncates the text to the description
// limit, cutting on a rune boundary.
func (s *Sources) summarize(text string) string {
	clean := strings.TrimSpace(s.strip.Sanitize(text))
	if len(clean) > descriptionLimit {
		cut := descriptionLimit
		for cut > 0 && !utf8.RuneStart(clean[cut]) {
			cut--
		}
		clean = clean[:cut] + "..."
	}
	return clean
}

// parseTime handles the timestamp formats the sources emit. Unparseable
// values fall back to the current time so the article still sorts near
// the top rather than vanishing to the bottom.
func parseTime(value string) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		time.RFC1123Z,
		time.RFC1123,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
