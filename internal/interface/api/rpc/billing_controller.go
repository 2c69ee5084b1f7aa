package rpc

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/application/services"
	"docchat-api/internal/domain/identity"
)

type BillingController struct {
	logger         *zap.Logger
	billingService ports.BillingService
}

func NewBillingController(
	rt *Router,
	logger *zap.Logger,
	billingService ports.BillingService,
) *BillingController {
	bc := &BillingController{
		logger:         logger,
		billingService: billingService,
	}

	rt.Register(Procedure{Name: ProcCreateStripeSession, AuthRequired: true, Handle: bc.CreateStripeSession})

	return bc
}

func (bc *BillingController) CreateStripeSession(ctx context.Context, caller *identity.Identity, _ any) (any, error) {
	url, err := bc.billingService.CreateStripeSession(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoBillingAccount) {
			return nil, Unauthorized("no account for identity")
		}
		// normalized sentinel messages only; provider detail stays in the
		// service log
		return nil, Internal(err.Error())
	}

	return gin.H{"url": url}, nil
}
