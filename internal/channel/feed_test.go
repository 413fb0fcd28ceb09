package channel_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"setlist/internal/channel"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <yt:videoId>BZDhUZIq844</yt:videoId>
    <title>First Stream</title>
    <published>2024-01-15T12:00:00+00:00</published>
  </entry>
  <entry>
    <yt:videoId>dQw4w9WgXcQ</yt:videoId>
    <title>Second Stream</title>
    <published>2024-01-10T12:00:00+00:00</published>
  </entry>
</feed>`

type stubDoer struct {
	status int
	body   string
	url    string
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.url = req.URL.String()
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func TestLatestVideosParsesFeed(t *testing.T) {
	stub := &stubDoer{status: http.StatusOK, body: feedFixture}
	client := channel.NewClient(stub, 0)

	videos, err := client.LatestVideos(context.Background(), "UC7A7bGRVdIwo93nA3x-OQ", 0)
	if err != nil {
		t.Fatalf("LatestVideos failed: %v", err)
	}
	if !strings.Contains(stub.url, "channel_id=UC7A7bGRVdIwo93nA3x-OQ") {
		t.Fatalf("unexpected feed URL %q", stub.url)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].ID != "BZDhUZIq844" || videos[0].Title != "First Stream" {
		t.Fatalf("unexpected first video %+v", videos[0])
	}
	if videos[0].Published.IsZero() {
		t.Fatal("expected published timestamp parsed")
	}
}

func TestLatestVideosHonorsLimit(t *testing.T) {
	stub := &stubDoer{status: http.StatusOK, body: feedFixture}
	client := channel.NewClient(stub, 0)

	videos, err := client.LatestVideos(context.Background(), "UC7A7bGRVdIwo93nA3x-OQ", 1)
	if err != nil {
		t.Fatalf("LatestVideos failed: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("expected limit applied, got %d videos", len(videos))
	}
}

func TestLatestVideosRejectsNon200(t *testing.T) {
	stub := &stubDoer{status: http.StatusNotFound, body: "not found"}
	client := channel.NewClient(stub, 0)

	if _, err := client.LatestVideos(context.Background(), "UC7A7bGRVdIwo93nA3x-OQ", 0); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
