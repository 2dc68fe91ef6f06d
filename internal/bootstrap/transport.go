package bootstrap

import (
	"log/slog"
	"time"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/client/httpc"
	"shopadmin/internal/client/transport"
	"shopadmin/internal/config"
)

func BuildTransport(profile *config.Config, log *slog.Logger) (transport.Transport, error) {
	log.Info("profile",
		"env", profile.Env,
		"backend", profile.Backend.BaseURL,
		"proxy", profile.HTTP.ProxyURL != "",
		"max_in_flight", profile.HTTP.MaxInFlight,
	)

	httpClient, err := httpc.New(httpc.Options{
		Timeout:  time.Duration(profile.HTTP.TimeoutSeconds) * time.Second,
		ProxyURL: profile.HTTP.ProxyURL,
	})
	if err != nil {
		return nil, err
	}

	return transport.Build(transport.Options{
		HTTPClient:  httpClient,
		MaxInFlight: profile.HTTP.MaxInFlight,
		Logger:      log,
	})
}

func RetryPolicy(profile *config.Config, log *slog.Logger) failure.RetryPolicy {
	return failure.RetryPolicy{
		MaxAttempts: profile.Retry.MaxAttempts,
		Interval:    time.Duration(profile.Retry.IntervalSeconds) * time.Second,
		OnRetry: func(attempt int, err error) {
			log.Info("reconnecting to backend", "attempt", attempt, "max_attempts", profile.Retry.MaxAttempts)
		},
	}
}

// BuildServices wires the resource clients; nav receives maintenance navigations.
func BuildServices(profile *config.Config, log *slog.Logger, nav failure.Navigator) (backend.Services, error) {
	tr, err := BuildTransport(profile, log)
	if err != nil {
		return backend.Services{}, err
	}
	policy := failure.NewPolicy(nav, RetryPolicy(profile, log), log)
	return backend.New(tr, profile.Backend.BaseURL, policy, log), nil
}
