package account

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name is too long (max 255 characters)")
	ErrEmptyLocation = errors.New("provider location cannot be empty")
)

const MaxNameLength = 255

// Client is a guardian who enrolls children on the waitlist.
type Client struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	createdAt    time.Time
}

func NewClient(email Email, name, passwordHash string, now time.Time) (*Client, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &Client{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

func ReconstructClient(id uuid.UUID, email Email, name, passwordHash string, createdAt time.Time) *Client {
	return &Client{id: id, email: email, name: name, passwordHash: passwordHash, createdAt: createdAt}
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) Email() Email         { return c.email }
func (c *Client) Name() string         { return c.name }
func (c *Client) PasswordHash() string { return c.passwordHash }
func (c *Client) CreatedAt() time.Time { return c.createdAt }

// Provider is a daycare declaring placements. Its location feeds the locality score.
type Provider struct {
	id           uuid.UUID
	email        Email
	name         string
	location     string
	passwordHash string
	createdAt    time.Time
}

func NewProvider(email Email, name, location, passwordHash string, now time.Time) (*Provider, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	return &Provider{
		id:           uuid.New(),
		email:        email,
		name:         name,
		location:     location,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

func ReconstructProvider(id uuid.UUID, email Email, name, location, passwordHash string, createdAt time.Time) *Provider {
	return &Provider{
		id:           id,
		email:        email,
		name:         name,
		location:     location,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) Email() Email         { return p.email }
func (p *Provider) Name() string         { return p.name }
func (p *Provider) Location() string     { return p.location }
func (p *Provider) PasswordHash() string { return p.passwordHash }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
