package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	app "github.com/okian/studypath/internal/app"
	"github.com/okian/studypath/internal/config"
	"github.com/okian/studypath/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STUDYPATH_ADDR", ":8080")
			_ = os.Setenv("STUDYPATH_WRITE_TIMEOUT_MS", "2500")
			defer func() {
				_ = os.Unsetenv("STUDYPATH_ADDR")
				_ = os.Unsetenv("STUDYPATH_WRITE_TIMEOUT_MS")
			}()

			convey.Convey("Then the server picks up the configuration", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				srv := newHTTPServer(cfg, http.NotFoundHandler())
				convey.So(srv.Addr, convey.ShouldEqual, ":8080")
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 2500*time.Millisecond)
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)
			})
		})

		convey.Convey("When wiring the HTTP handler", func() {
			cfg := config.New()
			svc := app.New()
			ts := httptest.NewServer(newHandler(context.Background(), cfg, svc))
			defer ts.Close()

			convey.Convey("Then the API and docs routes are served", func() {
				for _, path := range []string{"/api/demo", "/api/careers", "/stats", "/healthz", "/api-docs", "/openapi.yaml"} {
					resp, err := http.Get(ts.URL + path)
					convey.So(err, convey.ShouldBeNil)
					_ = resp.Body.Close()
					convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				}
			})

			convey.Convey("And an analysis round-trips through the server", func() {
				resp, err := http.Post(ts.URL+"/api/analyze", "application/json",
					strings.NewReader(`{"name":"Ada","math":85,"science":78,"english":92,"history":45,"geography":55,"computer":88}`))
				convey.So(err, convey.ShouldBeNil)
				_ = resp.Body.Close()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When the system metrics updater's context ends", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then it returns without panicking", func() {
				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When updating system metrics directly", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}
