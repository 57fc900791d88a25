package httpserver

import (
	"context"

	"voice-fact-skill/internal/middleware"
	skillHTTP "voice-fact-skill/internal/skill/delivery/http"
)

// setupSkillDomain builds the webhook handler and mounts it on the
// configured path behind the security middleware.
func (srv *HTTPServer) setupSkillDomain(ctx context.Context) {
	mw := middleware.New(srv.l, srv.security)
	h := skillHTTP.New(srv.l, srv.skillUC, srv.registerer)

	skillHTTP.RegisterRoutes(srv.gin, srv.webhookPath, h, mw)
	srv.l.Infof(ctx, "Skill webhook route registered at POST %s", srv.webhookPath)
}
