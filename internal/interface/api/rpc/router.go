package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/domain/identity"
)

const maxInputSize = 1 << 16 // 64 KB

type (
	// DecodeFunc validates the raw input payload into the procedure's
	// typed input. It runs before authorization.
	DecodeFunc func(raw []byte) (any, error)

	// HandlerFunc executes the procedure. caller is nil for anonymous
	// calls of public procedures.
	HandlerFunc func(ctx context.Context, caller *identity.Identity, input any) (any, error)

	// Procedure declares one named operation: its input schema, whether a
	// resolved identity is required, and the handler.
	Procedure struct {
		Name         string
		AuthRequired bool
		Decode       DecodeFunc
		Handle       HandlerFunc
	}

	Router struct {
		logger     *zap.Logger
		resolver   ports.IdentityResolver
		procedures map[string]*Procedure
	}
)

func NewRouter(
	r *gin.Engine,
	logger *zap.Logger,
	resolver ports.IdentityResolver,
) *Router {
	rt := &Router{
		logger:     logger,
		resolver:   resolver,
		procedures: make(map[string]*Procedure),
	}

	r.POST(RouteRPC, rt.Dispatch)

	return rt
}

func (rt *Router) Register(p Procedure) {
	rt.procedures[p.Name] = &p
}

// Dispatch runs one call: decode and validate input, resolve and enforce
// identity, execute the handler, classify the outcome. Handler errors that
// are not *Error surface as a generic server error; their detail stays in
// the log.
func (rt *Router) Dispatch(c *gin.Context) {
	p, ok := rt.procedures[c.Param("procedure")]
	if !ok {
		rt.writeError(c, NotFound("unknown procedure"))
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxInputSize))
	if err != nil {
		rt.writeError(c, BadRequest("unreadable request body"))
		return
	}

	var input any
	if p.Decode != nil {
		if input, err = p.Decode(raw); err != nil {
			rt.writeError(c, BadRequest(err.Error()))
			return
		}
	}

	caller := rt.resolveCaller(c)
	if p.AuthRequired && caller.IsZero() {
		rt.writeError(c, Unauthorized("not authenticated"))
		return
	}

	out, err := p.Handle(c.Request.Context(), caller, input)
	if err != nil {
		var rpcErr *Error
		if errors.As(err, &rpcErr) {
			rt.writeError(c, rpcErr)
			return
		}
		rt.logger.Error("procedure failed",
			zap.String("procedure", p.Name), zap.Error(err))
		rt.writeError(c, Internal("internal server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": out})
}

// resolveCaller is best-effort: a missing or invalid token yields nil, and
// the auth requirement of the procedure decides whether that matters.
func (rt *Router) resolveCaller(c *gin.Context) *identity.Identity {
	token := bearerToken(c)
	if token == "" {
		return nil
	}

	caller, err := rt.resolver.Resolve(c.Request.Context(), token)
	if err != nil {
		return nil
	}

	return caller
}

func (rt *Router) writeError(c *gin.Context, e *Error) {
	c.JSON(e.HTTPStatus(), gin.H{"error": e})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return token
}
