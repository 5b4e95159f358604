package api

import (
	"context"
	"fmt"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
)

// Image generation models
const (
	ModelDallE2 = "dall-e-2"
	ModelDallE3 = "dall-e-3"
)

// GenerateImage asks OpenAI for images and returns their URLs
func (c *Client) GenerateImage(ctx context.Context, model, prompt string) ([]string, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, models.EndpointOpenAIImages, models.ProviderOpenAI,
		ImageRequest{Model: model, Prompt: prompt})
	if err != nil {
		return nil, err
	}

	c.indicator.Start()
	resp, err := c.do(ctx, req, "generate image")
	if err != nil {
		c.indicator.Stop()
		return nil, err
	}
	body, err := c.readBody(ctx, resp, "generate image")
	c.indicator.Stop()
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("image response is not valid JSON", string(body))
	}

	var urls []string
	gjson.GetBytes(body, PathImageURLs).ForEach(func(_, value gjson.Result) bool {
		urls = append(urls, value.String())
		return true
	})
	if len(urls) == 0 {
		return nil, apierrors.ErrNoContent
	}

	return urls, nil
}
