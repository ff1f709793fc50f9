package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateContentIsValidJSON(t *testing.T) {
	out := templateContent("Topic: Python\nLevel: beginner")

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload["content"], "Python")
	assert.Len(t, payload["sections"], 4)

	// The template deliberately has no outline/content keys, so the
	// stage-level repair paths always engage
	assert.NotContains(t, payload, "title")
	assert.NotContains(t, payload, "modules")
}

func TestTemplateContentWithoutTopicLine(t *testing.T) {
	out := templateContent("just a prompt")

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload["content"], "the subject")
}

func TestBuildRequestBodyFamilies(t *testing.T) {
	anthropic := buildRequestBody("eu.anthropic.claude-sonnet-4-20250514-v1:0", "p", "s", 100)
	assert.Equal(t, "bedrock-2023-05-31", anthropic["anthropic_version"])
	assert.Equal(t, "s", anthropic["system"])

	titan := buildRequestBody("amazon.titan-text-express-v1", "p", "s", 100)
	assert.Equal(t, "s\n\np", titan["inputText"])

	nova := buildRequestBody("eu.amazon.nova-pro-v1:0", "p", "", 100)
	assert.Contains(t, nova, "inferenceConfig")

	llama := buildRequestBody("meta.llama2-70b-chat-v1", "p", "", 100)
	assert.Equal(t, "p", llama["prompt"])
	assert.Equal(t, 100, llama["max_gen_len"])
}

func TestExtractResponseTextFamilies(t *testing.T) {
	text, err := extractResponseText("anthropic.claude-3-haiku-20240307-v1:0",
		[]byte(`{"content": [{"text": "hello"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	text, err = extractResponseText("amazon.titan-text-express-v1",
		[]byte(`{"results": [{"outputText": "hi"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "hi", text)

	text, err = extractResponseText("eu.amazon.nova-pro-v1:0",
		[]byte(`{"output": {"message": {"content": [{"text": "hey"}]}}}`))
	require.NoError(t, err)
	assert.Equal(t, "hey", text)

	text, err = extractResponseText("meta.llama2-70b-chat-v1",
		[]byte(`{"generation": "yo"}`))
	require.NoError(t, err)
	assert.Equal(t, "yo", text)

	_, err = extractResponseText("anthropic.claude-3-haiku-20240307-v1:0",
		[]byte(`{"content": []}`))
	assert.Error(t, err)
}
