package rpc

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/domain/identity"
)

type AuthController struct {
	logger         *zap.Logger
	accountService ports.AccountService
}

func NewAuthController(
	rt *Router,
	logger *zap.Logger,
	accountService ports.AccountService,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		accountService: accountService,
	}

	// public so the handler can report UNAUTHORIZED itself: this is the
	// post-login landing call, not a protected resource
	rt.Register(Procedure{Name: ProcAuthCallback, Handle: ac.AuthCallback})

	return ac
}

func (ac *AuthController) AuthCallback(ctx context.Context, caller *identity.Identity, _ any) (any, error) {
	if caller.IsZero() {
		return nil, Unauthorized("not authenticated")
	}

	if err := ac.accountService.SyncAccount(ctx, caller); err != nil {
		ac.logger.Error("SyncAccount() error", zap.Error(err))
		return nil, err
	}

	return gin.H{"success": true}, nil
}
