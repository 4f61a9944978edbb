package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/uniseparate/internal/core"
)

// withRequestMetadata adds the client IP and User-Agent recorded in
// conversion history.
func withRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ctx = core.ContextWithIPAddress(ctx, clientIP(r))
	ctx = core.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}
