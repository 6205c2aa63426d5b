package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type accessContextKey struct{ name string }

var accessCtxKey = &accessContextKey{"access"}
var userCtxKey = &accessContextKey{"user"}

var tracer = otel.Tracer("data-platform-mgmt/authz")

// DefaultUserID is assumed when neither the policy result nor the request
// carries an identity, which matches local development without an IdP.
const DefaultUserID = "dev-user"

type Scope string

var AnyScope Scope = Scope("any")

type Enticator interface {
	RequireAccess(scopes ...Scope) func(http.Handler) http.Handler
}

type accessMap map[string]map[Scope]struct{}

type impl struct {
	query rego.PreparedEvalQuery
}

func (a *impl) RequireAccess(scopes ...Scope) func(http.Handler) http.Handler {

	validate_scopes := make([]string, 0, len(scopes))
	for _, s := range scopes {
		validate_scopes = append(validate_scopes, string(s))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token":  token[7:],
				"scopes": validate_scopes,
			}

			results, err := a.query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// If authz fails we will get back a single bool. Check for that first.
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// If authz succeeds we should expect a result object here
			result, ok := binding.(map[string]any)

			if !ok {
				err = errors.New("unexpected result type")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			anyAccess, ok1 := result["access"]
			access, ok2 := anyAccess.(map[string]any)

			if !ok1 || !ok2 {
				err = errors.New("bad response from authz policy engine")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			accessObj := accessMap{}

			for workspace, anyScopes := range access {
				scopes, ok := anyScopes.([]any)
				if !ok {
					logger.Error("rego response type error")
					http.Error(w, "rego error", http.StatusInternalServerError)
					return
				}

				accessObj[workspace] = map[Scope]struct{}{}

				for _, s := range scopes {
					scope := s.(string)
					accessObj[workspace][Scope(scope)] = struct{}{}
				}
			}

			if len(accessObj) == 0 {
				// requested scopes were not allowed in any workspace
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, _ := result["sub"].(string)
			if userID == "" {
				userID = r.Header.Get("X-User-ID")
			}
			if userID == "" {
				userID = DefaultUserID
			}

			ctx := WithAccess(r.Context(), accessObj)
			r = r.WithContext(WithUserID(ctx, userID))

			// Token is authenticated, pass it through
			next.ServeHTTP(w, r)
		})
	}
}

func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.dataplatform.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return &impl{query: query}, nil
}

// GetWorkspacesWithAllowedScopes extracts the names of allowed workspaces, if any, from the provided context
func GetWorkspacesWithAllowedScopes(ctx context.Context, scopes ...Scope) []string {
	access, ok := ctx.Value(accessCtxKey).(accessMap)
	requiredScopeCount := len(scopes)

	if !ok || requiredScopeCount == 0 {
		return []string{}
	}

	// If the required scope is AnyScope we set the scope count as
	// 0 to disable the scope checking below
	if requiredScopeCount == 1 && scopes[0] == AnyScope {
		requiredScopeCount = 0
	}

	workspaces := make([]string, 0, len(access))

	for w, allowedScopes := range access {
		idx := 0

		for idx < requiredScopeCount {
			if _, ok := allowedScopes[scopes[idx]]; !ok {
				break
			}
			idx++
		}

		if idx == requiredScopeCount {
			workspaces = append(workspaces, w)
		}
	}

	return workspaces
}

// GetAllowedWorkspacesFromContext extracts workspace names regardless of
// which scopes they were granted with.
func GetAllowedWorkspacesFromContext(ctx context.Context) []string {
	return GetWorkspacesWithAllowedScopes(ctx, AnyScope)
}

func WithAccess(ctx context.Context, access accessMap) context.Context {
	return context.WithValue(ctx, accessCtxKey, access)
}

// WithAllowedWorkspaces grants every scope in the named workspaces. Meant
// for tests and internal callers that bypass the policy engine.
func WithAllowedWorkspaces(ctx context.Context, workspaces []string) context.Context {
	access := accessMap{}
	for _, w := range workspaces {
		access[w] = map[Scope]struct{}{AnyScope: {}}
	}
	return WithAccess(ctx, access)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userCtxKey, userID)
}

// GetUserIDFromContext returns the identity of the calling user, falling
// back to DefaultUserID when the request was not attributed to anyone.
func GetUserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(userCtxKey).(string); ok && userID != "" {
		return userID
	}
	return DefaultUserID
}
