// Package openai adapts OpenAI's chat completion API to eval.ChatModel.
package openai

import (
	"context"
	"errors"
	"fmt"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/boukeas/searchtoy/search/eval"
)

// ChatModel implements eval.ChatModel against OpenAI chat completions.
type ChatModel struct {
	apiKey    string
	modelName string
}

// NewChatModel returns a ChatModel for modelName (gpt-4o-mini if empty).
func NewChatModel(apiKey, modelName string) *ChatModel {
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	return &ChatModel{apiKey: apiKey, modelName: modelName}
}

// Chat implements eval.ChatModel.
func (m *ChatModel) Chat(ctx context.Context, messages []eval.Message) (eval.ChatOut, error) {
	if m.apiKey == "" {
		return eval.ChatOut{}, errors.New("openai: API key is required")
	}
	if ctx.Err() != nil {
		return eval.ChatOut{}, ctx.Err()
	}

	client := openaisdk.NewClient(option.WithAPIKey(m.apiKey))

	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(m.modelName),
		Messages: convertMessages(messages),
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return eval.ChatOut{}, fmt.Errorf("openai: %w", err)
	}
	return convertResponse(resp), nil
}

func convertMessages(messages []eval.Message) []openaisdk.ChatCompletionMessageParamUnion {
	result := make([]openaisdk.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case eval.RoleSystem:
			result[i] = openaisdk.SystemMessage(msg.Content)
		case eval.RoleAssistant:
			result[i] = openaisdk.AssistantMessage(msg.Content)
		default:
			result[i] = openaisdk.UserMessage(msg.Content)
		}
	}
	return result
}

func convertResponse(resp *openaisdk.ChatCompletion) eval.ChatOut {
	out := eval.ChatOut{
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out
}
