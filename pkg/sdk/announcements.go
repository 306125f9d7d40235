package sdk

import (
	"context"
	"net/url"
)

func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	_, err := c.get(ctx, "/announcement", &announcements)
	return announcements, err
}

func (c *Client) SaveAnnouncement(ctx context.Context, req SaveAnnouncementRequest) error {
	_, err := c.post(ctx, "/announcement", req)
	return err
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.delete(ctx, "/announcement", url.Values{"id": {id}})
}
