package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"visitorpass/config"
	"visitorpass/infras/jwt"
	"visitorpass/infras/otel"
	userDto "visitorpass/internal/domains/user/model/dto"
	userService "visitorpass/internal/domains/user/service"
	"visitorpass/permissions"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	"visitorpass/shared/logger"
	"visitorpass/shared/secret"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
	Internal(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	users      userService.User
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

// NewAuthRoleMiddleware creates a new middleware instance
func NewAuthRoleMiddleware(
	jwtService jwt.JWT,
	users userService.User,
	otel otel.Otel,
	permissions *permissions.PermissionData,
	cfg *config.Config,
) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		users:      users,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if path == "" {
		path = request.URL.Path
	}

	// mounted groups report their index route with a trailing slash
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return path
}

func (m *authRoleImpl) skipped(request *http.Request) bool {
	if skip, _ := request.Context().Value(SkipAuthKey("skip")).(bool); skip {
		return true
	}

	if m.permission == nil {
		return false
	}

	return m.permission.Skip || m.permission.FindPermissions(routePattern(request), request.Method).Skip
}

// Auth validates the bearer token and puts the caller's identity on the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if m.skipped(request) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       routePattern(request),
			"http.method":     request.Method,
		})

		reject := func(err error) {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject(failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			reject(failure.Unauthorized(message))

			return
		}

		if claims.UserID() == "" || claims.Email == "" {
			log.Error().Str("sub", claims.UserID()).Msg("JWT claims: subject or email is empty")
			reject(failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID())
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role())
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		if m.users != nil {
			err = m.users.Sync(ctx, userDto.SyncRequest{
				ID:       claims.UserID(),
				Email:    claims.Email,
				Role:     claims.Role(),
				FullName: claims.UserMetadata.FullName,
			})
			if err != nil {
				logger.Request(ctx).Warn().Err(err).Msg("failed to sync user profile")
			}
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks if user has required role
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.skipped(request) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)
		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey for internal service-to-service authentication using API key
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), false)
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKeyHash == "" || secret.Verify(apiKey, m.cfg.App.APIKeyHash) != nil {
			err := failure.ForbiddenError

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextSystem)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Internal only lets through requests that APIKey has verified.
func (m *authRoleImpl) Internal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if verified, _ := request.Context().Value(SkipAuthKey("skip")).(bool); !verified {
			response.WithError(writer, failure.Unauthorized("Missing or invalid API key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}
