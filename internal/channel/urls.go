// Package channel resolves YouTube channel and video identifiers and fetches
// a channel's latest uploads from its public Atom feed, for the home-page
// style channel preview.
package channel

import "regexp"

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

var channelIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/channel/([a-zA-Z0-9_-]{22})`),
	regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_-]{3,})`),
	regexp.MustCompile(`youtube\.com/c/([a-zA-Z0-9_-]{3,})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID pulls a video ID out of a watch, short or embed URL. A bare
// 11-character ID is accepted as-is. Returns "" when nothing matches.
func ExtractVideoID(url string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

// ExtractChannelID pulls a channel ID or handle out of a channel URL.
// Returns "" when nothing matches.
func ExtractChannelID(url string) string {
	for _, pattern := range channelIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

// WatchURL builds the watch page URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL builds the medium-quality thumbnail URL for a video ID.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/mqdefault.jpg"
}

// FeedURL builds the public Atom uploads feed URL for a channel ID.
func FeedURL(channelID string) string {
	return "https://www.youtube.com/feeds/videos.xml?channel_id=" + channelID
}
