package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/domain/identity"
	domain "docchat-api/internal/domain/user"
	userDB "docchat-api/internal/infrastructure/db/postgres/user"
	"docchat-api/internal/infrastructure/mq"
)

type AccountService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewAccountService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// SyncAccount is the identity-callback effect: find the User row, create it
// on first contact. The users.id uniqueness constraint resolves the
// lookup-then-create race; a duplicate-key insert counts as success.
func (as *AccountService) SyncAccount(ctx context.Context, ident *identity.Identity) error {
	u, err := as.userRepository.FetchUserByID(ctx, ident.ID)
	if err != nil {
		return err
	}
	if u != nil {
		return nil
	}

	created, err := as.userRepository.CreateUser(ctx, domain.User{
		ID:    ident.ID,
		Email: ident.Email,
	})
	if err != nil {
		if errors.Is(err, userDB.ErrUserAlreadyExists) {
			// lost the race against a concurrent first call
			return nil
		}
		return err
	}

	as.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Kind:    mq.EventUserRegistered,
		UserID:  created.ID,
		Payload: created.Email,
	}

	as.mCounter.WithLabelValues("users_registered_total").Inc()

	return nil
}
