package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"go.aira.dev/staffing/selector"
)

type proposalRequest struct {
	Category string `json:"category"`
	Scale    int    `json:"scale"`
	Month    int    `json:"month"`
	Duo      bool   `json:"duo"`
	Seed     uint64 `json:"seed,omitempty"`
	Explain  bool   `json:"explain"`
}

type proposalResponse struct {
	*selector.Proposal
	Seed uint64 `json:"seed"`
}

type poolResponse struct {
	Month    int                  `json:"month"`
	Pool     []selector.Candidate `json:"pool"`
	Excluded []selector.Exclusion `json:"excluded"`
}

func (srv *Server) createProposal(c echo.Context) error {
	ctx := c.Request().Context()

	var req proposalRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	rng, seed := selector.NewRand(req.Seed)

	p, err := srv.sl.Propose(ctx, srv.src, selector.Request{
		Category: req.Category,
		Scale:    req.Scale,
		Month:    time.Month(req.Month),
		Duo:      req.Duo,
	}, rng)
	if err != nil {
		return srv.apiError(ctx, err)
	}

	if !req.Explain {
		p.Rounds = nil
	}
	if p.Excluded == nil {
		p.Excluded = []selector.Exclusion{}
	}

	return c.JSON(http.StatusOK, proposalResponse{Proposal: p, Seed: seed})
}

func (srv *Server) rosterPool(c echo.Context) error {
	ctx := c.Request().Context()

	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "month must be a number from 1 to 12")
	}

	pool, excluded, err := srv.sl.Pool(ctx, srv.src, time.Month(month))
	if err != nil {
		return srv.apiError(ctx, err)
	}

	if excluded == nil {
		excluded = []selector.Exclusion{}
	}

	return c.JSON(http.StatusOK, poolResponse{
		Month:    month,
		Pool:     pool,
		Excluded: excluded,
	})
}

func (srv *Server) healthz(c echo.Context) error {
	if srv.db == nil {
		return c.String(http.StatusOK, "ok")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.log.WarnContext(ctx, "health check failed", "err", err)
		return c.String(http.StatusServiceUnavailable, "database unavailable")
	}

	return c.String(http.StatusOK, "ok")
}

// apiError maps selector errors to HTTP errors
func (srv *Server) apiError(ctx context.Context, err error) error {
	if errors.Is(err, selector.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	srv.log.ErrorContext(ctx, "request failed", "err", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
