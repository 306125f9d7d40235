package sdk

import (
	"context"
	"net/url"
)

func (c *Client) GetWhitelist(ctx context.Context) (*Whitelist, error) {
	var entries []WhitelistEntry
	env, err := c.get(ctx, "/whitelist", &entries)
	if err != nil {
		return nil, err
	}
	return &Whitelist{Enabled: env.Enabled, Entries: entries}, nil
}

func (c *Client) SetWhitelistEnabled(ctx context.Context, enabled bool) error {
	_, err := c.post(ctx, "/whitelist", whitelistAction{Action: "toggle", Enabled: &enabled})
	return err
}

func (c *Client) AddWhitelist(ctx context.Context, uuid, name string) error {
	_, err := c.post(ctx, "/whitelist", whitelistAction{Action: "add", UUID: uuid, Name: name})
	return err
}

func (c *Client) DeleteWhitelist(ctx context.Context, uuid string) error {
	return c.delete(ctx, "/whitelist", url.Values{"uuid": {uuid}})
}
