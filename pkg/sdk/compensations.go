package sdk

import (
	"context"
	"net/url"
)

func (c *Client) ListCompensations(ctx context.Context) ([]Compensation, error) {
	var compensations []Compensation
	_, err := c.get(ctx, "/compensation", &compensations)
	return compensations, err
}

func (c *Client) SaveCompensation(ctx context.Context, req SaveCompensationRequest) error {
	for i := range req.Items {
		if req.Items[i].Lore == nil {
			req.Items[i].Lore = []string{}
		}
	}
	_, err := c.post(ctx, "/compensation", req)
	return err
}

func (c *Client) DeleteCompensation(ctx context.Context, id string) error {
	return c.delete(ctx, "/compensation", url.Values{"id": {id}})
}
