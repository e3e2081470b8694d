package seed

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/apierr"
	"github.com/carson-networks/transactions-report/internal/logging"
)

const seededMessage = "Database seeded successfully"

// SeedOutput is a plain-text confirmation.
type SeedOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// seeder is the interface for replacing the stored dataset.
type seeder interface {
	Seed(ctx context.Context) (int, error)
}

// SeedHandler handles GET /api/seed.
type SeedHandler struct {
	SeedService seeder
}

func NewSeedHandler(svc seeder) *SeedHandler {
	return &SeedHandler{SeedService: svc}
}

func (h *SeedHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "seed-transactions",
		Method:      http.MethodGet,
		Path:        "/api/seed",
		Summary:     "Reseed the database",
		Description: "Downloads the product transaction dataset and replaces every stored record with it.",
		Tags:        []string{"Seed"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Seed completed",
				Content: map[string]*huma.MediaType{
					"text/plain": {Schema: &huma.Schema{Type: huma.TypeString}},
				},
			},
		},
	}, h.handle)
}

func (h *SeedHandler) handle(ctx context.Context, _ *struct{}) (*SeedOutput, error) {
	inserted, err := h.SeedService.Seed(ctx)
	if err != nil {
		return nil, apierr.FromError(err, "failed to store seed data")
	}

	logging.GetLogData(ctx).AddData("seeded", inserted)
	return &SeedOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(seededMessage),
	}, nil
}
