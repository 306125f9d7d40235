package sdk

import "context"

func (c *Client) ListClaimLogs(ctx context.Context) ([]ClaimLog, error) {
	var logs []ClaimLog
	_, err := c.get(ctx, "/log", &logs)
	return logs, err
}
