package eval

import (
	"context"
	"time"
)

// chatWithTimeout calls model.Chat bounded by timeout (no bound if <= 0),
// protecting the search loop from a provider that hangs.
func chatWithTimeout(ctx context.Context, model ChatModel, messages []Message, timeout time.Duration) (ChatOut, error) {
	if timeout <= 0 {
		return model.Chat(ctx, messages)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return model.Chat(ctx, messages)
}
