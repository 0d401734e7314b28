package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/leaflog/leaflog/pkg/activity"
	"github.com/leaflog/leaflog/pkg/authors"
	"github.com/leaflog/leaflog/pkg/binder"
	"github.com/leaflog/leaflog/pkg/bookinfo"
	"github.com/leaflog/leaflog/pkg/books"
	"github.com/leaflog/leaflog/pkg/config"
	"github.com/leaflog/leaflog/pkg/errcodes"
	"github.com/leaflog/leaflog/pkg/genres"
	"github.com/leaflog/leaflog/pkg/goals"
	"github.com/leaflog/leaflog/pkg/quotes"
	"github.com/leaflog/leaflog/pkg/readinglog"
	"github.com/leaflog/leaflog/pkg/recaps"
	"github.com/leaflog/leaflog/pkg/recommendations"
	"github.com/leaflog/leaflog/pkg/series"
	"github.com/leaflog/leaflog/pkg/sessions"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	// Analytics routes
	activity.RegisterRoutes(e, db)
	recommendations.RegisterRoutes(e, db)
	recaps.RegisterRoutes(e, db)

	// Catalog and logging routes
	books.RegisterRoutes(e, db)
	sessions.RegisterRoutes(e, db)
	readinglog.RegisterRoutes(e, db)
	authors.RegisterRoutes(e, db)
	genres.RegisterRoutes(e, db)
	bookinfo.RegisterRoutes(e, db)
	quotes.RegisterRoutes(e, db)
	goals.RegisterRoutes(e, db)
	series.RegisterRoutes(e, db)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
