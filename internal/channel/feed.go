package channel

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Video is one upload from a channel's Atom feed.
type Video struct {
	ID        string
	Title     string
	Published time.Time
}

// HTTPDoer abstracts http.Client.Do for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches channel uploads.
type Client struct {
	client HTTPDoer
}

// NewClient constructs a feed client. Pass nil to use a default HTTP client
// with the given timeout.
func NewClient(client HTTPDoer, timeout time.Duration) *Client {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Client{client: client}
}

type feedDocument struct {
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	VideoID   string `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
}

// LatestVideos fetches up to limit uploads from the channel's public Atom
// feed, newest first as the feed orders them.
func (c *Client) LatestVideos(ctx context.Context, channelID string, limit int) ([]Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, FeedURL(channelID), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch channel feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("channel feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read channel feed: %w", err)
	}

	var doc feedDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse channel feed: %w", err)
	}

	videos := make([]Video, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		if limit > 0 && len(videos) >= limit {
			break
		}
		video := Video{ID: entry.VideoID, Title: entry.Title}
		if published, err := time.Parse(time.RFC3339, entry.Published); err == nil {
			video.Published = published
		}
		videos = append(videos, video)
	}
	return videos, nil
}
