package graphql

import (
	"clinic-service/internal/app/config"
	"context"
	"net/http"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

type Handler struct {
	relay          *relay.Handler
	InternalConfig *config.InternalConfig
}

// NewHandler parses the schema against resolver and panics on mismatch, so
// wiring errors surface at startup.
func NewHandler(resolver *Resolver, internalConfig *config.InternalConfig) *Handler {
	schema := graphql.MustParseSchema(Schema, resolver)
	return &Handler{
		relay:          &relay.Handler{Schema: schema},
		InternalConfig: internalConfig,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(h.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	h.relay.ServeHTTP(w, r.WithContext(ctx))
}
