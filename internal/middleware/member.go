package middleware

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
)

// MemberHeader carries the acting member's ID. The host application asserts it
// after authenticating the caller; this service trusts it as given.
const MemberHeader = "Settleup-Member"

// ErrMissingMember is returned when a procedure that acts on behalf of a member
// is called without MemberHeader.
var ErrMissingMember = errors.New("missing " + MemberHeader + " header")

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// MemberIDKey is the context key for storing the acting member ID.
const MemberIDKey contextKey = "member_id"

// GetMemberID extracts the acting member ID from the context.
// Returns empty string if not found.
func GetMemberID(ctx context.Context) string {
	memberID, _ := ctx.Value(MemberIDKey).(string)
	return memberID
}

// WithMemberID returns a copy of ctx carrying memberID.
func WithMemberID(ctx context.Context, memberID string) context.Context {
	return context.WithValue(ctx, MemberIDKey, memberID)
}

// MemberInterceptor copies MemberHeader into the context. Procedures listed in
// required fail with CodeUnauthenticated when the header is absent; all others
// pass through with or without a member.
func MemberInterceptor(required ...string) connect.UnaryInterceptorFunc {
	needs := make(map[string]bool, len(required))
	for _, p := range required {
		needs[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			memberID := strings.TrimSpace(req.Header().Get(MemberHeader))
			if memberID == "" {
				if needs[req.Spec().Procedure] {
					return nil, connect.NewError(connect.CodeUnauthenticated, ErrMissingMember)
				}
				return next(ctx, req)
			}
			return next(WithMemberID(ctx, memberID), req)
		}
	}
}

// SetMember returns a client interceptor that sends memberID on every call.
func SetMember(memberID string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				req.Header().Set(MemberHeader, memberID)
			}
			return next(ctx, req)
		}
	}
}
