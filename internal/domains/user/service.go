package user

import "context"

// Service is the protocol-agnostic business surface for users. The REST
// handlers and the SOAP dispatcher both call these methods so that
// validation and persistence behavior cannot drift between surfaces.
type Service interface {
	// Authenticate verifies credentials and returns the user plus a signed token.
	Authenticate(ctx context.Context, username, password string) (*DTO, string, error)

	// Register creates a self-service account and logs it in.
	Register(ctx context.Context, req RegisterRequest) (*DTO, string, error)

	GetByID(ctx context.Context, id int64) (*DTO, error)
	List(ctx context.Context) ([]DTO, error)
	Create(ctx context.Context, req CreateRequest) (*DTO, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*DTO, error)
	Delete(ctx context.Context, id int64) error
}
