package llm

import "time"

const (
	DefaultAPIURL      = "http://localhost:1337/v1/chat/completions"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 120 * time.Second

	chatCompletionsSuffix = "/chat/completions"
)

// Role is the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PartType is the type of one multimodal content part.
type PartType string

const (
	PartText     PartType = "text"
	PartImageURL PartType = "image_url"
)

// FinishReasonLength means the model stopped at the max_tokens limit.
const FinishReasonLength = "length"
