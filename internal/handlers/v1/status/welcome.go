package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const welcomeMessage = "Welcome to the Transactions API!"

type WelcomeOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// RegisterWelcome registers GET / on api.
func RegisterWelcome(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message",
		Tags:        []string{"Status"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Greeting",
				Content: map[string]*huma.MediaType{
					"text/plain": {Schema: &huma.Schema{Type: huma.TypeString}},
				},
			},
		},
	}, func(ctx context.Context, _ *struct{}) (*WelcomeOutput, error) {
		return &WelcomeOutput{
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(welcomeMessage),
		}, nil
	})
}
