package generator

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"coursegen/config"

	"github.com/go-resty/resty/v2"
)

// ModelClient is the text-generation capability used by every stage of the
// pipeline. Invoke never returns an error: any transport or service failure
// yields deterministic template content so downstream JSON parsing (and its
// own fallbacks) always run.
type ModelClient interface {
	Invoke(ctx context.Context, prompt, modelID, systemPrompt string, maxTokens int) string
	Available() bool
}

// Model aliases resolved to full runtime identifiers
var bedrockModels = map[string]string{
	"claude-4-sonnet":   "eu.anthropic.claude-sonnet-4-20250514-v1:0",
	"claude-3-7-sonnet": "eu.anthropic.claude-3-7-sonnet-20250219-v1:0",
	"nova-pro":          "eu.amazon.nova-pro-v1:0",
	"nova-lite":         "eu.amazon.nova-lite-v1:0",
	"claude-3-5-sonnet": "anthropic.claude-3-5-sonnet-20240620-v1:0",
	"claude-3-5-haiku":  "anthropic.claude-3-5-haiku-20241022-v1:0",
	"claude-3-haiku":    "anthropic.claude-3-haiku-20240307-v1:0",
	"titan-text":        "amazon.titan-text-express-v1",
	"jurassic-2":        "ai21.j2-ultra-v1",
	"llama2-70b":        "meta.llama2-70b-chat-v1",
}

// BedrockInvoker calls a Bedrock-style model runtime over HTTP. When no
// credentials are configured the client stays nil and every call takes the
// template path.
type BedrockInvoker struct {
	client *resty.Client
}

// NewBedrockInvoker builds an invoker from application config
func NewBedrockInvoker() *BedrockInvoker {
	cfg := config.AppConfig
	inv := &BedrockInvoker{}

	if cfg.BedrockApiURL == "" || cfg.BedrockApiKey == "" {
		log.Println("Bedrock runtime not configured, using template generation")
		return inv
	}

	inv.client = resty.New().
		SetBaseURL(cfg.BedrockApiURL).
		SetAuthToken(cfg.BedrockApiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(cfg.LLMTimeoutSeconds) * time.Second).
		SetRetryCount(2)

	log.Printf("Bedrock runtime client initialized for region %s (timeout: %ds)",
		cfg.AwsRegion, cfg.LLMTimeoutSeconds)
	return inv
}

// Available reports whether a remote runtime is configured
func (inv *BedrockInvoker) Available() bool {
	return inv.client != nil
}

// Invoke sends one prompt to the model runtime and returns the generated
// text. The request and response shapes depend on the model family; callers
// only ever see plain text.
func (inv *BedrockInvoker) Invoke(ctx context.Context, prompt, modelID, systemPrompt string, maxTokens int) string {
	if inv.client == nil {
		return templateContent(prompt)
	}

	fullModelID := modelID
	if resolved, ok := bedrockModels[modelID]; ok {
		fullModelID = resolved
	}

	body := buildRequestBody(fullModelID, prompt, systemPrompt, maxTokens)

	resp, err := inv.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/model/" + fullModelID + "/invoke")
	if err != nil {
		log.Printf("Bedrock invocation error: %v", err)
		return templateContent(prompt)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		log.Printf("Bedrock API error: %s", resp.Status())
		return templateContent(prompt)
	}

	text, err := extractResponseText(fullModelID, resp.Body())
	if err != nil {
		log.Printf("Failed to parse model response: %v", err)
		return templateContent(prompt)
	}
	return text
}

// buildRequestBody prepares the wire payload for the target model family
func buildRequestBody(fullModelID, prompt, systemPrompt string, maxTokens int) map[string]any {
	joined := prompt
	if systemPrompt != "" {
		joined = systemPrompt + "\n\n" + prompt
	}

	switch {
	case strings.Contains(fullModelID, "anthropic.claude"):
		body := map[string]any{
			"anthropic_version": "bedrock-2023-05-31",
			"max_tokens":        maxTokens,
			"temperature":       0.7,
			"messages": []map[string]any{
				{"role": "user", "content": prompt},
			},
		}
		if systemPrompt != "" {
			body["system"] = systemPrompt
		}
		return body

	case strings.Contains(fullModelID, "amazon.titan"):
		return map[string]any{
			"inputText": joined,
			"textGenerationConfig": map[string]any{
				"maxTokenCount": maxTokens,
				"temperature":   0.7,
				"topP":          0.9,
			},
		}

	case strings.Contains(fullModelID, "amazon.nova"):
		return map[string]any{
			"messages": []map[string]any{
				{"role": "user", "content": joined},
			},
			"inferenceConfig": map[string]any{
				"max_new_tokens": maxTokens,
				"temperature":    0.7,
				"top_p":          0.9,
			},
		}

	case strings.Contains(fullModelID, "ai21.j2"):
		return map[string]any{
			"prompt":      joined,
			"maxTokens":   maxTokens,
			"temperature": 0.7,
		}

	default: // meta.llama and other single-prompt models
		return map[string]any{
			"prompt":      joined,
			"max_gen_len": maxTokens,
			"temperature": 0.7,
			"top_p":       0.9,
		}
	}
}

// extractResponseText pulls the generated text out of a family-specific response body
func extractResponseText(fullModelID string, raw []byte) (string, error) {
	switch {
	case strings.Contains(fullModelID, "anthropic.claude"):
		var out struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return "", err
		}
		if len(out.Content) == 0 {
			return "", errEmptyResponse
		}
		return out.Content[0].Text, nil

	case strings.Contains(fullModelID, "amazon.titan"):
		var out struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return "", err
		}
		if len(out.Results) == 0 {
			return "", errEmptyResponse
		}
		return out.Results[0].OutputText, nil

	case strings.Contains(fullModelID, "amazon.nova"):
		var out struct {
			Output struct {
				Message struct {
					Content []struct {
						Text string `json:"text"`
					} `json:"content"`
				} `json:"message"`
			} `json:"output"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return "", err
		}
		if len(out.Output.Message.Content) == 0 {
			return "", errEmptyResponse
		}
		return out.Output.Message.Content[0].Text, nil

	case strings.Contains(fullModelID, "ai21.j2"):
		var out struct {
			Completions []struct {
				Data struct {
					Text string `json:"text"`
				} `json:"data"`
			} `json:"completions"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return "", err
		}
		if len(out.Completions) == 0 {
			return "", errEmptyResponse
		}
		return out.Completions[0].Data.Text, nil

	default:
		var out struct {
			Generation string `json:"generation"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return "", err
		}
		return out.Generation, nil
	}
}

var errEmptyResponse = errEmpty{}

type errEmpty struct{}

func (errEmpty) Error() string { return "empty model response" }

// templateContent is the deterministic stand-in payload returned whenever the
// model runtime is unavailable or fails. It is valid JSON but deliberately
// lacks the keys the generation stages require, so their own structured
// fallbacks take over.
func templateContent(prompt string) string {
	topic := "the subject"
	for _, line := range strings.Split(prompt, "\n") {
		t := strings.TrimSpace(line)
		if len(t) > 6 && strings.EqualFold(t[:6], "topic:") {
			topic = strings.TrimSpace(t[6:])
			break
		}
	}

	payload, _ := json.Marshal(map[string]any{
		"content": "This is template-generated content for " + topic + ". Model runtime not available.",
		"sections": []string{
			"Introduction and Overview",
			"Core Concepts",
			"Practical Applications",
			"Best Practices",
		},
	})
	return string(payload)
}
