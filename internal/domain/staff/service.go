package staff

import "context"

// StaffService manages staff records, their rate history and their payment
// instructions.
type StaffService interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Get(ctx context.Context, id string) (StaffResponse, error)
	List(ctx context.Context, activeOnly bool) ([]StaffResponse, error)
	Update(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error

	// CreateRate appends a new effective-dated rate row; the previous current
	// row for the same bucket is closed in the same transaction.
	CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	ListRates(ctx context.Context, staffID string) ([]RateResponse, error)
	DeleteRate(ctx context.Context, id string) error

	CreateInstruction(ctx context.Context, req CreateInstructionRequest) (InstructionResponse, error)
	ListInstructions(ctx context.Context, staffID string, activeOnly bool) ([]InstructionResponse, error)
	UpdateInstruction(ctx context.Context, req UpdateInstructionRequest) (InstructionResponse, error)
	DeleteInstruction(ctx context.Context, id string) error
}
