// Package link builds and parses invite deep links.
package link

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// StartPayloadPrefix tags invitation ids inside Telegram start payloads.
const StartPayloadPrefix = "join-"

var ErrNotJoinLink = errors.New("not an invite link")

// JoinURL builds the web deep link, e.g. https://taskmate.app/join/<id>.
func JoinURL(base, invitationID string) string {
	return fmt.Sprintf("%s/join/%s", strings.TrimRight(base, "/"), invitationID)
}

// BotURL builds the t.me deep link that opens the bot with a join start
// payload, e.g. https://t.me/taskmate_bot?start=join-<id>.
func BotURL(botName, invitationID string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s%s", botName, StartPayloadPrefix, invitationID)
}

// ParseJoinURL extracts the invitation id from a pasted deep link.
// Both https://<host>/join/<id> and taskmate://join/<id> are accepted;
// either way the id is the segment after "join".
func ParseJoinURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrNotJoinLink
	}
	if u.Host == "join" {
		// Custom scheme: the host slot carries the route.
		id := strings.Trim(u.Path, "/")
		if id == "" || strings.Contains(id, "/") {
			return "", ErrNotJoinLink
		}
		return id, nil
	}
	segments := strings.Split(u.Path, "/")
	if len(segments) < 3 || segments[1] != "join" || segments[2] == "" {
		return "", ErrNotJoinLink
	}
	return segments[2], nil
}

// ParseStartPayload extracts the invitation id from a /start payload.
func ParseStartPayload(payload string) (string, bool) {
	if !strings.HasPrefix(payload, StartPayloadPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(payload, StartPayloadPrefix)
	return id, id != ""
}
