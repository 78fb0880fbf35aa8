package httpserver

import (
	"context"
	"time"

	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "report-srv"
	ServiceVersion = "1.0.0"

	dependencyTimeout = 2 * time.Second
)

// dependency is checked by /ready. Optional ones are reported but never fail readiness.
type dependency struct {
	name     string
	optional bool
	check    func(ctx context.Context) error
}

type dependencyResult struct {
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	Error    string `json:"error,omitempty"`
	Latency  string `json:"latency"`
}

type readiness struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Version      string                      `json:"version"`
	Dependencies map[string]dependencyResult `json:"dependencies"`
}

func (srv HTTPServer) dependencies() []dependency {
	ps := []dependency{
		{name: "postgres", check: srv.cfg.PostgresDB.PingContext},
		{name: "redis", check: srv.cfg.RedisClient.Ping},
	}
	if srv.cfg.MinIOClient != nil {
		ps = append(ps, dependency{name: "minio", optional: true, check: srv.cfg.MinIOClient.Ping})
	}
	if srv.cfg.KafkaProducer != nil {
		ps = append(ps, dependency{name: "kafka", optional: true, check: func(context.Context) error {
			return srv.cfg.KafkaProducer.HealthCheck()
		}})
	}
	return ps
}

// checkDependencies checks every dependency concurrently and reports whether all required ones passed.
func checkDependencies(ctx context.Context, ps []dependency) (map[string]dependencyResult, bool) {
	type outcome struct {
		name string
		res  dependencyResult
	}

	ctx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()

	out := make(chan outcome, len(ps))
	for _, p := range ps {
		go func() {
			start := time.Now()
			err := p.check(ctx)
			res := dependencyResult{Status: "up", Optional: p.optional, Latency: time.Since(start).Round(time.Millisecond).String()}
			if err != nil {
				res.Status, res.Error = "down", err.Error()
			}
			out <- outcome{name: p.name, res: res}
		}()
	}

	results := make(map[string]dependencyResult, len(ps))
	ready := true
	for range ps {
		o := <-out
		results[o.name] = o.res
		if o.res.Status != "up" && !o.res.Optional {
			ready = false
		}
	}
	return results, ready
}

func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.cfg.Environment,
	})
}

func (srv HTTPServer) readyCheck(c *gin.Context) {
	deps, ok := checkDependencies(c.Request.Context(), srv.dependencies())
	body := readiness{Status: "ready", Service: ServiceName, Version: ServiceVersion, Dependencies: deps}
	if !ok {
		body.Status = "not ready"
		srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: Required dependency down: %+v", deps)
		response.Unavailable(c, body)
		return
	}
	response.OK(c, body)
}

func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
