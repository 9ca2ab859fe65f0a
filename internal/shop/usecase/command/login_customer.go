package command

import (
	"fmt"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/pkg/auth"
)

// LoginCustomerCommand represents a credential login attempt. The form's
// username field carries the customer email.
type LoginCustomerCommand struct {
	Email    string
	Password string
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	CustomerID  uint   `json:"customer_id"`
}

// LoginCustomerHandler handles customer login
type LoginCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewLoginCustomerHandler creates a new login handler
func NewLoginCustomerHandler(repo domain.CustomerRepository) *LoginCustomerHandler {
	return &LoginCustomerHandler{repo: repo}
}

// Handle executes the login command. An unknown email and a wrong password
// fail identically.
func (h *LoginCustomerHandler) Handle(cmd LoginCustomerCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(customer.Password, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		CustomerID:  customer.ID,
	}, nil
}
