package commands

//go:generate mockgen -source=account.go -destination=../mocks/commands/account_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/pkg/jwt"
	"daycare-waitlist/internal/pkg/password"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid email or password"), errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterClientInput struct {
	Email    string
	Password string
	Name     string
}

type RegisterProviderInput struct {
	Email    string
	Password string
	Name     string
	Location string
}

type LoginInput struct {
	Email    string
	Password string
	Kind     string
}

type LoginResult struct {
	Account     queries.AccountView
	AccessToken string
}

type AccountCommands interface {
	RegisterClient(ctx context.Context, in RegisterClientInput) (*queries.AccountView, error)
	RegisterProvider(ctx context.Context, in RegisterProviderInput) (*queries.AccountView, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type accountCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAccountCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AccountCommands {
	return &accountCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *accountCommandsImpl) RegisterClient(ctx context.Context, in RegisterClientInput) (*queries.AccountView, error) {
	email, hash, err := prepareCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	c, err := account.NewClient(email, in.Name, hash, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateDuplicate(tx.Accounts().InsertClient(ctx, c), email)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "client registered", "client_id", c.ID())
	view := queries.NewClientAccountView(c)
	return &view, nil
}

func (a *accountCommandsImpl) RegisterProvider(ctx context.Context, in RegisterProviderInput) (*queries.AccountView, error) {
	email, hash, err := prepareCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	p, err := account.NewProvider(email, in.Name, in.Location, hash, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateDuplicate(tx.Accounts().InsertProvider(ctx, p), email)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "provider registered", "provider_id", p.ID())
	view := queries.NewProviderAccountView(p)
	return &view, nil
}

func (a *accountCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	kind, err := account.NewKind(in.Kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	email, err := account.NewEmail(in.Email)
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}

	var (
		view queries.AccountView
		hash string
	)
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if kind == account.KindClient {
			c, err := tx.Accounts().FindClientByEmail(ctx, email)
			if err != nil {
				return err
			}
			view, hash = queries.NewClientAccountView(c), c.PasswordHash()
			return nil
		}
		p, err := tx.Accounts().FindProviderByEmail(ctx, email)
		if err != nil {
			return err
		}
		view, hash = queries.NewProviderAccountView(p), p.PasswordHash()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, kind)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "account logged in", "account_id", view.ID, "kind", kind.String())
	return &LoginResult{Account: view, AccessToken: token}, nil
}

func prepareCredentials(rawEmail, rawPassword string) (account.Email, string, error) {
	email, err := account.NewEmail(rawEmail)
	if err != nil {
		return account.Email{}, "", errs.Mark(err, errs.ErrValidation)
	}
	if err := password.Validate(rawPassword); err != nil {
		return account.Email{}, "", errs.Mark(err, errs.ErrValidation)
	}
	hash, err := password.HashPassword(rawPassword)
	if err != nil {
		return account.Email{}, "", errs.Wrap(err, "hash password")
	}
	return email, hash, nil
}

func translateDuplicate(err error, email account.Email) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Markf(errs.ErrDuplicateAccount, "email %s is already registered", email)
	}
	return err
}
