package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/cbmworship/songlibrary/internal/api/handlers"
	"github.com/cbmworship/songlibrary/internal/api/middleware"
	"github.com/cbmworship/songlibrary/internal/auth"
	"github.com/cbmworship/songlibrary/internal/config"
	"github.com/cbmworship/songlibrary/internal/domain/admins"
	"github.com/cbmworship/songlibrary/internal/domain/catalog"
	"github.com/cbmworship/songlibrary/internal/domain/leaders"
	"github.com/cbmworship/songlibrary/internal/domain/services"
	"github.com/cbmworship/songlibrary/internal/metrics"
	"github.com/cbmworship/songlibrary/internal/storage/postgres"
)

// NewRouter builds the full HTTP surface. Catalog reads are public;
// mutations and set-list reads require an admin bearer token.
func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, err
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, "songlibrary")

	catalogService := catalog.NewService(repo.Catalog())
	leadersService := leaders.NewService(repo.Leaders())
	servicesService := services.NewService(repo.Services())
	adminsService := admins.NewService(repo.Admins(), jwtManager)

	env := cfg.Environment
	songsHandler := handlers.NewSongsHandler(catalogService, env)
	artistsHandler := handlers.NewArtistsHandler(catalogService, env)
	leadersHandler := handlers.NewLeadersHandler(leadersService, env)
	keysHandler := handlers.NewPreferredKeysHandler(leadersService, env)
	servicesHandler := handlers.NewServicesHandler(servicesService, env)
	authHandler := handlers.NewAdminAuthHandler(adminsService, env)
	healthHandler := handlers.NewHealthHandler(pool, env)

	adminOnly := middleware.AdminAuth(jwtManager, env)
	gated := func(h http.HandlerFunc) http.Handler { return adminOnly(h) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Healthz)
	mux.HandleFunc("GET /readyz", healthHandler.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /api/admin/login", authHandler.Login)

	// Catalog reads.
	mux.HandleFunc("GET /api/songs", songsHandler.List)
	mux.HandleFunc("GET /api/songs/songs-with-artists", songsHandler.ListWithArtists)
	mux.HandleFunc("GET /api/songs/artists", artistsHandler.List)
	mux.HandleFunc("GET /api/songs/worship-leaders", leadersHandler.List)
	mux.HandleFunc("GET /api/songs/recent", servicesHandler.Recent)
	mux.HandleFunc("GET /api/songs/recent/{leader}", servicesHandler.Recent)
	mux.HandleFunc("GET /api/songs/most-played", servicesHandler.MostPlayed)
	mux.HandleFunc("GET /api/songs/most-played/{leader}", servicesHandler.MostPlayed)
	mux.HandleFunc("GET /api/songs/preferred-keys", keysHandler.List)
	mux.HandleFunc("GET /api/songs/preferred-keys/{leader}", keysHandler.List)
	mux.HandleFunc("GET /api/songs/services-with-songs", servicesHandler.ListWithSongs)
	mux.HandleFunc("POST /api/songs/check-duplicate", songsHandler.CheckDuplicate)

	// Song mutations.
	mux.Handle("POST /api/songs", gated(songsHandler.Create))
	mux.Handle("PUT /api/songs/{id}", gated(songsHandler.Update))
	mux.Handle("DELETE /api/songs/{id}", gated(songsHandler.Delete))

	// Artist mutations.
	mux.Handle("POST /api/songs/artists", gated(artistsHandler.Create))
	mux.Handle("PUT /api/songs/artists/{id}", gated(artistsHandler.Update))
	mux.Handle("DELETE /api/songs/artists/{id}", gated(artistsHandler.Delete))

	// Worship leader mutations.
	mux.Handle("POST /api/songs/worship-leaders", gated(leadersHandler.Create))
	mux.Handle("PUT /api/songs/worship-leaders/{leader_id}", gated(leadersHandler.Update))
	mux.Handle("DELETE /api/songs/worship-leaders/{leader_id}", gated(leadersHandler.Delete))

	// Sunday services and their set lists.
	mux.Handle("POST /api/songs/services", gated(servicesHandler.Create))
	mux.Handle("PUT /api/songs/services/{service_id}", gated(servicesHandler.UpdateDate))
	mux.Handle("DELETE /api/songs/services/{service_id}", gated(servicesHandler.Delete))
	mux.Handle("PUT /api/songs/services/{service_id}/leader", gated(servicesHandler.SetLeader))
	mux.Handle("GET /api/songs/services/{service_id}/songs", gated(servicesHandler.ListSongs))
	mux.Handle("POST /api/songs/services/{service_id}/songs", gated(servicesHandler.AddSong))
	mux.Handle("PUT /api/songs/services/{service_id}/songs", gated(servicesHandler.UpdateSong))
	mux.Handle("DELETE /api/songs/services/{service_id}/songs", gated(servicesHandler.DeleteSong))
	mux.Handle("PUT /api/songs/services/{service_id}/songs/bulk-leader", gated(servicesHandler.BulkReassignLeader))

	// Preferred keys, both identity schemes.
	mux.Handle("POST /api/songs/preferred-keys", gated(keysHandler.CreateTracked))
	mux.Handle("PUT /api/songs/preferred-keys/track", gated(keysHandler.UpdateTracked))
	mux.Handle("DELETE /api/songs/preferred-keys/track", gated(keysHandler.DeleteTracked))
	mux.Handle("POST /api/songs/preferred-keys/notrack", gated(keysHandler.CreateUntracked))
	mux.Handle("PUT /api/songs/preferred-keys/notrack", gated(keysHandler.UpdateUntracked))
	mux.Handle("DELETE /api/songs/preferred-keys/notrack", gated(keysHandler.DeleteUntracked))
	mux.Handle("PUT /api/songs/preferred-keys/{id}", gated(keysHandler.UpdateByID))
	mux.Handle("DELETE /api/songs/preferred-keys/{id}", gated(keysHandler.DeleteByID))

	var handler http.Handler = mux
	handler = middleware.Metrics(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	return handler, nil
}
