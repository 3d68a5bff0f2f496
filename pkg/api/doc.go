/*
Package api exposes the locator over HTTP.

The server binds the three locator operations to JSON endpoints, serves the
static UI (including the facility map image, which is never parsed), and
exports Prometheus metrics. Every JSON response carries an "ok" field; every
failure is a structured {ok:false, message} body, never a crash.

# Routes

	GET  /api/health       service liveness; never fails
	GET  /api/search?q=    item search with rack join
	GET  /api/map          facility metadata + all rack markers
	POST /api/admin/rack   place or move a rack marker {code, x, y}
	GET  /metrics          Prometheus exposition
	GET  /                 static assets (UI + map image)

# Status Mapping

	400  invalid input (blank code, non-numeric coordinates, bad body)
	405  wrong method on an API route
	429  admin rate limit exceeded
	500  dataset write-back failed (change not durable, not confirmed)
	503  dataset unreadable (missing/corrupt document)

Internal error causes are logged for operators and never echoed to clients.

# Middleware

Each API route is wrapped with instrumentation: a per-request UUID for log
correlation, a request log line with method/route/status/client/duration, and
Prometheus counters and latency histograms. The admin route additionally runs
a per-client-IP token-bucket rate limiter; the client IP honors X-Real-IP and
X-Forwarded-For when a proxy sits in front.

# Usage

	loc := locator.New(store, cfg.MapFile)
	server := api.NewServer(loc, api.Config{
		Listen:    ":8080",
		AssetsDir: "web",
	})

	go func() { errCh <- server.Start() }()
	...
	server.Shutdown(ctx)

# See Also

  - pkg/locator for operation semantics
  - pkg/client for the matching Go client
*/
package api
