// Package gemini 基于 Google GenAI 的文本生成客户端，
// 同时实现搜索建议与商品文案生成两类接口。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	catalogdomain "github.com/novamart/storefront/internal/catalog/domain"
)

// Client Gemini 文本生成客户端
type Client struct {
	client *genai.Client
	model  string
}

// NewClient 创建 Gemini 客户端
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Suggest 生成与查询相关的购物搜索词
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	prompt := fmt.Sprintf("Suggest 5 concise shopping search terms related to: %q. Return only the list.", query)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	}

	text, err := c.generate(ctx, prompt, config)
	if err != nil {
		return nil, err
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return suggestions, nil
}

// Description 生成商品描述文案
func (c *Client) Description(ctx context.Context, name, category string) (string, error) {
	prompt := fmt.Sprintf("Act as a professional e-commerce copywriter. Write a compelling, detailed product description (approx 50 words) for a new %q product named %q. Focus on quality, utility, and modern lifestyle.", category, name)
	return c.generate(ctx, prompt, nil)
}

// Analysis 生成两句话的商品卖点短评
func (c *Client) Analysis(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf("Provide a quick 2-sentence marketing highlight for a product named %q.", name)
	return c.generate(ctx, prompt, nil)
}

// SEOData 生成商品 SEO 元数据
func (c *Client) SEOData(ctx context.Context, name, category string) (*catalogdomain.SEOData, error) {
	prompt := fmt.Sprintf("Generate SEO metadata for a product named %q in the category %q. Return JSON.", name, category)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"meta_title":       {Type: genai.TypeString},
				"meta_description": {Type: genai.TypeString},
				"slug":             {Type: genai.TypeString},
				"tags":             {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"meta_title", "meta_description", "slug", "tags"},
		},
	}

	text, err := c.generate(ctx, prompt, config)
	if err != nil {
		return nil, err
	}

	var seo catalogdomain.SEOData
	if err := json.Unmarshal([]byte(text), &seo); err != nil {
		return nil, fmt.Errorf("failed to decode SEO metadata: %w", err)
	}
	return &seo, nil
}

// TrustPolicies 生成保修与退货条款
func (c *Client) TrustPolicies(ctx context.Context, name, category string) (*catalogdomain.TrustPolicies, error) {
	prompt := fmt.Sprintf("Generate standard warranty and return policy text for a product named %q in the %q category. Return as JSON.", name, category)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"warranty":      {Type: genai.TypeString, Description: "Detailed warranty text"},
				"return_policy": {Type: genai.TypeString, Description: "Detailed return policy text"},
			},
			Required: []string{"warranty", "return_policy"},
		},
	}

	text, err := c.generate(ctx, prompt, config)
	if err != nil {
		return nil, err
	}

	var policies catalogdomain.TrustPolicies
	if err := json.Unmarshal([]byte(text), &policies); err != nil {
		return nil, fmt.Errorf("failed to decode trust policies: %w", err)
	}
	return &policies, nil
}

func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return text, nil
}
