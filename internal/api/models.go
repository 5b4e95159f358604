package api

import (
	"context"
	"sort"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
)

// ListModels returns the model ids Anthropic currently serves, sorted
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, models.EndpointAnthropicModels, models.ProviderAnthropic, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req, "list models")
	if err != nil {
		return nil, err
	}
	body, err := c.readBody(ctx, resp, "list models")
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("model list is not valid JSON", string(body))
	}

	var ids []string
	gjson.GetBytes(body, PathModelIDs).ForEach(func(_, value gjson.Result) bool {
		if id := value.String(); id != "" {
			ids = append(ids, id)
		}
		return true
	})
	sort.Strings(ids)

	return ids, nil
}
