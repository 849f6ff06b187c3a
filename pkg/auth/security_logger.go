package auth

import (
	"context"
	"strings"
)

// LogPermissionDenied records a request refused by the capability check.
func (sl *SecurityLogger) LogPermissionDenied(ctx context.Context, userID, role, method, path string, missing []string) {
	sl.logger.Warnf(ctx, "SECURITY: permission denied - user=%s role=%q %s %s missing=%s",
		userID, role, method, path, strings.Join(missing, ","))
}

// LogAuthenticationFailure records a rejected credential or token.
func (sl *SecurityLogger) LogAuthenticationFailure(ctx context.Context, subject, reason string) {
	sl.logger.Warnf(ctx, "SECURITY: authentication failure - subject=%s reason=%s", subject, reason)
}

func (sl *SecurityLogger) LogRateLimitExceeded(ctx context.Context, err *RateLimitError) {
	sl.logger.Warnf(ctx, "SECURITY: rate limit exceeded - user=%s limit=%s current=%d max=%d",
		err.UserID, err.Limit, err.Current, err.Max)
}

// LogRoleChange records an administrative role assignment.
func (sl *SecurityLogger) LogRoleChange(ctx context.Context, actorID, targetID, from, to string) {
	sl.logger.Warnf(ctx, "SECURITY: role change - actor=%s target=%s from=%s to=%s", actorID, targetID, from, to)
}
