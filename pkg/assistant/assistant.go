// Package assistant drives the note tools from an OpenAI model. The
// model decides which tools to call; results are fed back until it
// produces a plain reply. Conversation history is carried across turns
// and trimmed to a token budget.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkoukk/tiktoken-go"

	"github.com/entrhq/scribe/pkg/logging"
	"github.com/entrhq/scribe/pkg/types"
)

// ErrNoAPIKey means no OpenAI key was configured. Chat UIs treat this
// as "assistant disabled" and fall back to the rule-based interpreter.
var ErrNoAPIKey = errors.New("assistant: no API key configured (set OPENAI_API_KEY)")

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o"

	// DefaultTokenBudget bounds the conversation history.
	DefaultTokenBudget = 16000

	// maxToolRounds caps tool-call iterations per Send.
	maxToolRounds = 8
)

const systemPrompt = "You are a helpful assistant with access to note management and calculation tools. Use these tools when appropriate to help the user."

// Caller invokes tools by name. Satisfied by *client.Client.
type Caller interface {
	CallTool(ctx context.Context, name string, args map[string]interface{}) (*types.CallToolResponse, error)
}

// Assistant holds one conversation with the model. Not safe for
// concurrent use; callers serialize Send.
type Assistant struct {
	client  openai.Client
	model   string
	baseURL string
	caller  Caller
	tools   []openai.ChatCompletionToolParam
	history []openai.ChatCompletionMessageParamUnion
	budget  int
	counter func(string) int
	log     *logging.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithModel sets the model to use for completions.
func WithModel(model string) Option {
	return func(a *Assistant) {
		if model != "" {
			a.model = model
		}
	}
}

// WithBaseURL points the client at an OpenAI-compatible API.
func WithBaseURL(baseURL string) Option {
	return func(a *Assistant) {
		a.baseURL = baseURL
	}
}

// WithTokenBudget caps the conversation history size in tokens.
func WithTokenBudget(budget int) Option {
	return func(a *Assistant) {
		if budget > 0 {
			a.budget = budget
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(a *Assistant) {
		a.log = log
	}
}

// New creates an assistant over the given tool catalog. An empty
// apiKey falls back to the OPENAI_API_KEY environment variable; if
// that is empty too, New returns ErrNoAPIKey.
func New(apiKey string, descriptors []types.ToolDescriptor, caller Caller, opts ...Option) (*Assistant, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	a := &Assistant{
		model:  DefaultModel,
		caller: caller,
		tools:  toolParams(descriptors),
		budget: DefaultTokenBudget,
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if a.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(a.baseURL))
	}
	a.client = openai.NewClient(clientOpts...)

	a.counter = newTokenCounter(a.model)
	a.history = []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(systemPrompt)}

	return a, nil
}

// Send runs one conversation turn. The model may chain several tool
// calls before settling on a reply.
func (a *Assistant) Send(ctx context.Context, input string) (string, error) {
	a.history = append(a.history, openai.UserMessage(input))
	a.trimHistory()

	msgs := a.history
	for round := 0; round < maxToolRounds; round++ {
		completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(a.model),
			Messages: msgs,
			Tools:    a.tools,
		})
		if err != nil {
			return "", fmt.Errorf("assistant: completion request failed: %w", err)
		}
		if len(completion.Choices) == 0 {
			return "", errors.New("assistant: completion returned no choices")
		}

		msg := completion.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			a.history = append(msgs, openai.AssistantMessage(msg.Content))
			return msg.Content, nil
		}

		msgs = append(msgs, msg.ToParam())
		for _, call := range msg.ToolCalls {
			result := a.runTool(ctx, call)
			msgs = append(msgs, openai.ToolMessage(result, call.ID))
		}
	}

	return "", fmt.Errorf("assistant: no final reply after %d tool rounds", maxToolRounds)
}

// Reset drops the conversation history, keeping the system prompt.
func (a *Assistant) Reset() {
	a.history = []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(systemPrompt)}
}

// Model returns the model name in use.
func (a *Assistant) Model() string {
	return a.model
}

// runTool executes one tool call and renders the result as the tool
// message content. Failures become text so the model can react.
func (a *Assistant) runTool(ctx context.Context, call openai.ChatCompletionMessageToolCall) string {
	name := call.Function.Name

	var args map[string]interface{}
	if raw := call.Function.Arguments; raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for tool %s: %v", name, err)
		}
	}

	a.log.Infof("assistant tool call: %s %s", name, call.Function.Arguments)

	resp, err := a.caller.CallTool(ctx, name, args)
	if err != nil {
		return fmt.Sprintf("Error calling tool %s: %v", name, err)
	}
	return resp.Text()
}

// trimHistory drops the oldest turns until the history fits the token
// budget. The system prompt always stays, and tool results never
// outlive the assistant message that requested them.
func (a *Assistant) trimHistory() {
	for len(a.history) > 2 && a.countTokens() > a.budget {
		a.history = append(a.history[:1], a.history[2:]...)
		for len(a.history) > 1 && a.history[1].OfTool != nil {
			a.history = append(a.history[:1], a.history[2:]...)
		}
	}
}

func (a *Assistant) countTokens() int {
	total := 0
	for _, msg := range a.history {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		total += a.counter(string(data))
	}
	return total
}

// toolParams converts tool descriptors to chat-completion tool
// definitions.
func toolParams(descriptors []types.ToolDescriptor) []openai.ChatCompletionToolParam {
	params := make([]openai.ChatCompletionToolParam, 0, len(descriptors))
	for _, d := range descriptors {
		params = append(params, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        d.Name,
				Description: openai.String(d.Description),
				Parameters:  openai.FunctionParameters(d.InputSchema),
			},
		})
	}
	return params
}

// newTokenCounter returns a token counting function for the model,
// falling back to a bytes/4 estimate when the encoding is unavailable
// (e.g. no cached BPE data).
func newTokenCounter(model string) func(string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
	}
	if err != nil || enc == nil {
		return func(s string) int { return len(s) / 4 }
	}
	return func(s string) int {
		return len(enc.Encode(s, nil, nil))
	}
}
