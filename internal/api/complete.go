package api

import (
	"context"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/termchat/internal/conversation"
	"github.com/diogo/termchat/internal/models"
)

// Complete sends a buffered request and returns the reply text.
// ok is false when the provider answered without a reply. The waiting
// indicator runs until the body has been read or the request failed.
func (c *Client) Complete(ctx context.Context, t *conversation.Transcript, shape models.Shape) (string, bool, error) {
	if shape == models.ShapeDelta {
		shape = models.ShapeResponses
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, shape.Endpoint(), shape.Provider(), buildBody(t, shape, c.maxTokens))
	if err != nil {
		return "", false, err
	}

	c.logger.Debug("sending request", "shape", shape.String(), "model", t.Model, "messages", t.Len())

	c.indicator.Start()
	resp, err := c.do(ctx, req, "complete")
	if err != nil {
		c.indicator.Stop()
		return "", false, err
	}
	body, err := c.readBody(ctx, resp, "complete")
	c.indicator.Stop()
	if err != nil {
		return "", false, err
	}

	return ExtractText(body, shape)
}

// Ask sends a one-shot exchange outside the session transcript: a developer
// message and an optional user message, on the shape OneShotShape picks.
func (c *Client) Ask(ctx context.Context, model, developer, user string) (string, bool, error) {
	t := conversation.New(model, false)
	t.Push(models.NewMessage(models.RoleDeveloper, developer))
	if user != "" {
		t.Push(models.NewMessage(models.RoleUser, user))
	}
	return c.Complete(ctx, t, models.OneShotShape(model))
}
